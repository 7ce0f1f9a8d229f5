// Package displays provides the in-process order observers backing the
// kitchen board and the customer tracking screen. Both render state
// changes through structured logging; a richer UI can replace them by
// implementing order.Observer.
package displays

import (
	"log/slog"

	"pizzeria/internal/core/domain/model/order"
)

// KitchenBoard mirrors every order state change for the kitchen staff.
type KitchenBoard struct {
	logger *slog.Logger
}

// NewKitchenBoard creates a kitchen board display.
func NewKitchenBoard(logger *slog.Logger) *KitchenBoard {
	return &KitchenBoard{
		logger: logger.With("component", "kitchen_board"),
	}
}

// Notify renders the order's new state on the board.
func (b *KitchenBoard) Notify(o *order.Order) {
	if o == nil {
		return
	}
	b.logger.Info("order update",
		"order_id", o.ID(),
		"state", o.Status().String(),
	)
}

// CustomerScreen shows a customer the progress of their order.
type CustomerScreen struct {
	logger *slog.Logger
}

// NewCustomerScreen creates a customer tracking screen.
func NewCustomerScreen(logger *slog.Logger) *CustomerScreen {
	return &CustomerScreen{
		logger: logger.With("component", "customer_screen"),
	}
}

// Notify shows the order's new state to the customer.
func (s *CustomerScreen) Notify(o *order.Order) {
	if o == nil {
		return
	}
	s.logger.Info("your order changed state",
		"order_id", o.ID(),
		"state", o.Status().String(),
		"total", o.Total(),
	)
}
