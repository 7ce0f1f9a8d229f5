// Package orderservice provides the OrderService facade, the sole entry
// point external collaborators (HTTP handlers, display controllers) use to
// reach the order core. It orchestrates the registry, the snapshot store,
// and the receipt store, and performs the one-time rehydration of the
// registry from disk.
package orderservice

import (
	"context"
	"errors"
	"log/slog"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// OrderService is the facade over the order core. Every mutating call is
// followed by a full snapshot write through the command handlers; expected
// control-flow cases (unknown ID, terminal order) never surface as errors.
//
// Example:
//
//	service, err := orderservice.NewOrderService(registry, store, receiptStore,
//	    orderservice.NewLoadGuard(), logger)
//	if err != nil {
//	    return err
//	}
//
//	o, err := service.CreateOrder(ctx, "Tradicional", "Tomate", "Mozzarella",
//	    "Normal", []string{"Pepperoni"}, nil)
type OrderService struct {
	registry *order.Registry
	receipts ports.ReceiptStore
	logger   *slog.Logger

	createHandler  commands.CreateOrderCommandHandler
	advanceHandler commands.AdvanceOrderCommandHandler
	cancelHandler  commands.CancelOrderCommandHandler
	pricingHandler commands.SetPricingPolicyCommandHandler
	byIDHandler    queries.GetOrderByIDQueryHandler
}

// NewOrderService creates the facade and performs the one-time load of the
// persisted snapshot into the registry. The load happens at most once per
// guard: later constructions sharing the guard skip it. A failing load is
// logged and the service starts from an empty registry.
func NewOrderService(
	registry *order.Registry,
	store ports.OrderStore,
	receipts ports.ReceiptStore,
	loadGuard *LoadGuard,
	logger *slog.Logger,
) (*OrderService, error) {
	if err := errors.Join(
		requireDependency(registry == nil, "registry"),
		requireDependency(store == nil, "order store"),
		requireDependency(receipts == nil, "receipt store"),
		requireDependency(loadGuard == nil, "load guard"),
		requireDependency(logger == nil, "logger"),
	); err != nil {
		return nil, err
	}

	s := &OrderService{
		registry: registry,
		receipts: receipts,
		logger:   logger.With("component", "order_service"),

		createHandler:  commands.NewCreateOrderCommandHandler(registry, store, logger),
		advanceHandler: commands.NewAdvanceOrderCommandHandler(registry, store, logger),
		cancelHandler:  commands.NewCancelOrderCommandHandler(registry, store, logger),
		pricingHandler: commands.NewSetPricingPolicyCommandHandler(registry),
		byIDHandler:    queries.NewGetOrderByIDQueryHandler(registry),
	}

	loadGuard.do(func() {
		s.loadFromStore(store)
	})

	return s, nil
}

func requireDependency(missing bool, name string) error {
	if missing {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// loadFromStore replays the persisted snapshot into the registry. Orders
// keep their stored IDs and totals; the registry advances its counter past
// the highest loaded ID.
func (s *OrderService) loadFromStore(store ports.OrderStore) {
	orders, err := store.LoadAll()
	if err != nil {
		s.logger.Error("failed to load order store, starting with empty registry", "error", err)
		return
	}

	for _, o := range orders {
		s.registry.RegisterExisting(o)
	}

	if len(orders) > 0 {
		s.logger.Info("rehydrated orders from store", "count", len(orders))
	}
}

// CreateOrder builds the composition from the given choices, registers the
// order priced by the active policy, and persists the snapshot.
func (s *OrderService) CreateOrder(
	ctx context.Context,
	base, sauce, cheese, crust string,
	toppings, seasonings []string,
) (*order.Order, error) {
	cmd, err := commands.NewCreateOrderCommand(base, sauce, cheese, crust, toppings, seasonings)
	if err != nil {
		return nil, err
	}

	return s.createHandler.Handle(ctx, cmd)
}

// SetPromotionalPricing switches between promotional and standard pricing
// for subsequently created orders only.
func (s *OrderService) SetPromotionalPricing(ctx context.Context, active bool) error {
	return s.pricingHandler.Handle(ctx, commands.NewSetPricingPolicyCommand(active))
}

// ListOrders returns all orders in registration order.
func (s *OrderService) ListOrders() []*order.Order {
	return s.registry.ListAll()
}

// FindOrder returns the order with the given ID, or false when absent.
func (s *OrderService) FindOrder(id int64) (*order.Order, bool) {
	return s.registry.FindByID(id)
}

// OrderView returns the read-model projection of the identified order.
// An absent ID yields an ObjectNotFoundError the caller can classify with
// errors.Is(err, errs.ErrObjectNotFound).
func (s *OrderService) OrderView(ctx context.Context, id int64) (queries.OrderView, error) {
	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return queries.OrderView{}, err
	}

	return s.byIDHandler.Handle(ctx, query)
}

// AdvanceOrder moves the order one lifecycle step and persists the
// snapshot. Unknown IDs and terminal orders are silent no-ops.
func (s *OrderService) AdvanceOrder(ctx context.Context, id int64) error {
	cmd, err := commands.NewAdvanceOrderCommand(id)
	if err != nil {
		return err
	}

	return s.advanceHandler.Handle(ctx, cmd)
}

// CancelOrder cancels the order and persists the snapshot. Unknown IDs
// and terminal orders are silent no-ops.
func (s *OrderService) CancelOrder(ctx context.Context, id int64) error {
	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return err
	}

	return s.cancelHandler.Handle(ctx, cmd)
}

// Subscribe attaches an observer to the identified order and returns the
// subscription handle. Returns false when the order does not exist.
// Observer subscription is a capability callers opt into explicitly; the
// core attaches no observers on its own.
func (s *OrderService) Subscribe(id int64, observer order.Observer) (order.SubscriptionID, bool) {
	o, ok := s.registry.FindByID(id)
	if !ok {
		return "", false
	}

	return o.Subscribe(observer), true
}

// Unsubscribe detaches the subscription from the identified order.
// Unknown orders and handles are no-ops.
func (s *OrderService) Unsubscribe(id int64, subscription order.SubscriptionID) {
	if o, ok := s.registry.FindByID(id); ok {
		o.Unsubscribe(subscription)
	}
}

// GenerateReceipt writes a printable ticket file from order data the
// caller already formatted and returns the file path.
func (s *OrderService) GenerateReceipt(orderNo, state string, lines []string, total string) (string, error) {
	return s.receipts.Save(orderNo, state, lines, total)
}

// OrderLog returns the raw legacy-log block for the order, or false when
// no entry exists.
func (s *OrderService) OrderLog(orderNo string) (string, bool) {
	return s.receipts.ReadLog(orderNo)
}
