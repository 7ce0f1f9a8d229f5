package cmd

import (
	"log/slog"
	"os"

	"pizzeria/internal/adapters/out/displays"
	"pizzeria/internal/adapters/out/receipts"
	"pizzeria/internal/adapters/out/textstore"
	"pizzeria/internal/core/application/orderservice"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/jobs"
)

// CompositionRoot wires the whole application: registry, stores, the
// order service facade, display observers, and background jobs.
type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	registry *order.Registry
	service  *orderservice.OrderService
	board    *displays.KitchenBoard
	screen   *displays.CustomerScreen
}

// NewCompositionRoot builds the object graph. The order snapshot is
// loaded from the store exactly once, guarded by a fresh LoadGuard.
func NewCompositionRoot(config Config) (*CompositionRoot, error) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	registry, err := order.NewRegistry(services.NewStandardPricing())
	if err != nil {
		return nil, err
	}

	store := textstore.NewStore(config.StoreFile, logger)
	receiptStore := receipts.NewStore(config.ReceiptsDir, config.OrderLogFile)

	service, err := orderservice.NewOrderService(registry, store, receiptStore,
		orderservice.NewLoadGuard(), logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:   config,
		logger:   logger,
		registry: registry,
		service:  service,
		board:    displays.NewKitchenBoard(logger),
		screen:   displays.NewCustomerScreen(logger),
	}, nil
}

// Logger returns the application logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// OrderService returns the facade over the order core.
func (c *CompositionRoot) OrderService() *orderservice.OrderService {
	return c.service
}

// KitchenBoard returns the kitchen display observer.
func (c *CompositionRoot) KitchenBoard() *displays.KitchenBoard {
	return c.board
}

// CustomerScreen returns the customer tracking observer.
func (c *CompositionRoot) CustomerScreen() *displays.CustomerScreen {
	return c.screen
}

// CreateGetAllOrdersQueryHandler builds the handler backing the board
// refresh job.
func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.registry)
}

// CreateJobManager builds the manager for all background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetAllOrdersQueryHandler(), c.config.BoardRefreshSpec, c.logger)
}
