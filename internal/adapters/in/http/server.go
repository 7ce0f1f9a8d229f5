package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"pizzeria/internal/core/application/orderservice"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the order service over HTTP.
// It translates requests into facade calls and domain orders into DTOs.
type Server struct {
	service *orderservice.OrderService
	board   order.Observer
	screen  order.Observer
}

// NewServer creates a new HTTP server over the order service. The board
// and screen observers are subscribed to every order created through the
// API; either may be nil to skip that display.
func NewServer(service *orderservice.OrderService, board, screen order.Observer) *Server {
	return &Server{
		service: service,
		board:   board,
		screen:  screen,
	}
}

// RegisterRoutes attaches all order endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/receipt", s.GenerateReceipt)
	api.GET("/orders/:id/log", s.GetOrderLog)
	api.PUT("/pricing", s.SetPricing)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - creates a new order priced by
// the active policy and subscribes the display observers to it.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	o, err := s.service.CreateOrder(
		ctx.Request().Context(),
		req.Base, req.Sauce, req.Cheese, req.Crust,
		req.Toppings, req.Seasonings,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if s.board != nil {
		o.Subscribe(s.board)
	}
	if s.screen != nil {
		o.Subscribe(s.screen)
	}

	return ctx.JSON(http.StatusCreated, newOrderResponse(o))
}

// GetOrders handles GET /api/v1/orders - retrieves all orders in
// registration order.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders := s.service.ListOrders()

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = newOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order
// through the read-side query handler.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	view, err := s.service.OrderView(ctx.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: fmt.Sprintf("Order %d not found", id),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, newOrderResponseFromView(view))
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - moves the order
// one lifecycle step. Advancing a terminal order is a no-op; the response
// carries the resulting state either way.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	o, ok, err := s.findOrder(ctx)
	if !ok {
		return err
	}

	if err := s.service.AdvanceOrder(ctx.Request().Context(), o.ID()); err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to advance order",
		})
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(o))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels the order.
// Cancelling a terminal order is a no-op.
func (s *Server) CancelOrder(ctx echo.Context) error {
	o, ok, err := s.findOrder(ctx)
	if !ok {
		return err
	}

	if err := s.service.CancelOrder(ctx.Request().Context(), o.ID()); err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to cancel order",
		})
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(o))
}

// SetPricing handles PUT /api/v1/pricing - switches the pricing policy
// applied to orders created from now on.
func (s *Server) SetPricing(ctx echo.Context) error {
	var req PricingRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := s.service.SetPromotionalPricing(ctx.Request().Context(), req.Promotional); err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to switch pricing policy",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GenerateReceipt handles POST /api/v1/orders/:id/receipt - writes a
// printable ticket file for the order and returns its path.
func (s *Server) GenerateReceipt(ctx echo.Context) error {
	o, ok, err := s.findOrder(ctx)
	if !ok {
		return err
	}

	orderNo := strconv.FormatInt(o.ID(), 10)
	total := strconv.FormatFloat(o.Total(), 'f', 2, 64)

	path, err := s.service.GenerateReceipt(orderNo, o.Status().String(), receiptLines(o), total)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to generate receipt",
		})
	}

	return ctx.JSON(http.StatusCreated, ReceiptResponse{Path: path})
}

// GetOrderLog handles GET /api/v1/orders/:id/log - returns the legacy-log
// block recorded for the order, if any.
func (s *Server) GetOrderLog(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	block, ok := s.service.OrderLog(strconv.FormatInt(id, 10))
	if !ok {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("No log entry for order %d", id),
		})
	}

	return ctx.JSON(http.StatusOK, OrderLogResponse{OrderID: id, Log: block})
}

// findOrder resolves the :id path parameter into a registered order.
// When resolution fails it writes the 400/404 response itself and returns
// ok=false with the write result.
func (s *Server) findOrder(ctx echo.Context) (*order.Order, bool, error) {
	id, err := parseOrderID(ctx)
	if err != nil {
		return nil, false, ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	o, found := s.service.FindOrder(id)
	if !found {
		return nil, false, ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("Order %d not found", id),
		})
	}

	return o, true, nil
}

func parseOrderID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid order id %q", ctx.Param("id"))
	}
	return id, nil
}

func newOrderResponse(o *order.Order) OrderResponse {
	c := o.Composition()
	status := o.Status()

	return OrderResponse{
		ID:         o.ID(),
		Base:       c.Base(),
		Sauce:      c.Sauce(),
		Cheese:     c.Cheese(),
		Crust:      c.Crust(),
		Toppings:   c.Toppings(),
		Seasonings: c.Seasonings(),
		Total:      o.Total(),
		State:      status.String(),
		Terminal:   status.IsTerminal(),
	}
}

func newOrderResponseFromView(view queries.OrderView) OrderResponse {
	return OrderResponse{
		ID:         view.ID,
		Base:       view.Base,
		Sauce:      view.Sauce,
		Cheese:     view.Cheese,
		Crust:      view.Crust,
		Toppings:   view.Toppings,
		Seasonings: view.Seasonings,
		Total:      view.Total,
		State:      view.State,
		Terminal:   view.Terminal,
	}
}

func receiptLines(o *order.Order) []string {
	c := o.Composition()

	lines := []string{
		"Base: " + c.Base(),
		"Sauce: " + c.Sauce(),
		"Cheese: " + c.Cheese(),
		"Crust: " + c.Crust(),
	}
	if toppings := c.Toppings(); len(toppings) > 0 {
		lines = append(lines, "Toppings: "+strings.Join(toppings, ", "))
	}
	if seasonings := c.Seasonings(); len(seasonings) > 0 {
		lines = append(lines, "Seasonings: "+strings.Join(seasonings, ", "))
	}

	return lines
}
