package models

import "gowebshop/pkg/logger"

// PaymentMethod is the charging strategy an order delegates to.
type PaymentMethod interface {
	Pay(amount float64) error
}

type CardPayment struct {
	log logger.Logger
}

func NewCardPayment(log logger.Logger) *CardPayment {
	return &CardPayment{log: log}
}

func (p *CardPayment) Pay(amount float64) error {
	p.log.Log("charged %.2f to card", amount)
	return nil
}

type CashPayment struct {
	log logger.Logger
}

func NewCashPayment(log logger.Logger) *CashPayment {
	return &CashPayment{log: log}
}

func (p *CashPayment) Pay(amount float64) error {
	p.log.Log("accepted %.2f in cash", amount)
	return nil
}
