package models

import "gowebshop/pkg/logger"

// EmailNotifier reports paid orders to the buyer's mailbox.
type EmailNotifier struct {
	log     logger.Logger
	Address string
}

func NewEmailNotifier(log logger.Logger, address string) *EmailNotifier {
	return &EmailNotifier{log: log, Address: address}
}

func (n *EmailNotifier) Update(o *Order) error {
	n.log.Log("email to %s: order %d paid, total %.2f", n.Address, o.ID, o.TotalPrice())
	return nil
}

// SMSNotifier reports paid orders to the buyer's phone.
type SMSNotifier struct {
	log   logger.Logger
	Phone string
}

func NewSMSNotifier(log logger.Logger, phone string) *SMSNotifier {
	return &SMSNotifier{log: log, Phone: phone}
}

func (n *SMSNotifier) Update(o *Order) error {
	n.log.Log("sms to %s: order %d paid, total %.2f", n.Phone, o.ID, o.TotalPrice())
	return nil
}
