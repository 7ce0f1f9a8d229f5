package commands

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order and persists the registry
// snapshot. Unknown IDs and terminal orders are silent no-ops.
type CancelOrderCommandHandler struct {
	registry OrderRegistry
	store    ports.OrderStore
	logger   *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for cancelling orders.
func NewCancelOrderCommandHandler(registry OrderRegistry, store ports.OrderStore, logger *slog.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		registry: registry,
		store:    store,
		logger:   logger.With("component", "cancel_order_handler"),
	}
}

// Handle cancels the order when possible and writes the snapshot.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.registry.Cancel(cmd.OrderID())

	if err := h.store.SaveAll(h.registry.ListAll()); err != nil {
		h.logger.ErrorContext(ctx, "failed to persist registry snapshot after cancel",
			"order_id", cmd.OrderID(),
			"error", err,
		)
	}

	return nil
}
