package commands

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/ports"
)

// AdvanceOrderCommandHandler moves an order forward through its lifecycle
// and persists the registry snapshot.
//
// Unknown IDs and terminal orders are silent no-ops by design: the counter
// staff can mash the advance button without surfacing errors to the UI.
type AdvanceOrderCommandHandler struct {
	registry OrderRegistry
	store    ports.OrderStore
	logger   *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler for advancing orders.
func NewAdvanceOrderCommandHandler(registry OrderRegistry, store ports.OrderStore, logger *slog.Logger) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		registry: registry,
		store:    store,
		logger:   logger.With("component", "advance_order_handler"),
	}
}

// Handle advances the order when possible and writes the snapshot. The
// snapshot is written even after a no-op, mirroring the save-after-every
// mutating call contract of the service layer.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.registry.Advance(cmd.OrderID())

	if err := h.store.SaveAll(h.registry.ListAll()); err != nil {
		h.logger.ErrorContext(ctx, "failed to persist registry snapshot after advance",
			"order_id", cmd.OrderID(),
			"error", err,
		)
	}

	return nil
}
