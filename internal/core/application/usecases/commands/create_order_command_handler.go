package commands

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds the composition, registers the order with the active pricing
// policy, and persists a full registry snapshot.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(registry, store, logger)
//	cmd, _ := NewCreateOrderCommand("Tradicional", "Tomate", "Mozzarella", "Normal", nil, nil)
//
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("Order %d registered at %0.2f", o.ID(), o.Total())
type CreateOrderCommandHandler struct {
	registry OrderRegistry
	store    ports.OrderStore
	logger   *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(registry OrderRegistry, store ports.OrderStore, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		registry: registry,
		store:    store,
		logger:   logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command. The new order starts in
// Received status with a total priced by the currently active policy.
// The snapshot write failure is logged but does not undo the in-memory
// registration; memory and disk reconcile on the next successful write.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	composition := pizza.NewBuilder().
		WithBase(cmd.Base()).
		WithSauce(cmd.Sauce()).
		WithCheese(cmd.Cheese()).
		WithCrust(cmd.Crust()).
		AddToppings(cmd.Toppings()).
		AddSeasonings(cmd.Seasonings()).
		Build()

	o := h.registry.Register(composition)

	if err := h.store.SaveAll(h.registry.ListAll()); err != nil {
		h.logger.ErrorContext(ctx, "failed to persist registry snapshot after create",
			"order_id", o.ID(),
			"error", err,
		)
	}

	return o, nil
}
