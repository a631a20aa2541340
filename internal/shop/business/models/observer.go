package models

// Observer is notified synchronously when its subject changes state.
type Observer interface {
	Update(o *Order) error
}
