package queries

import (
	"context"

	"pizzeria/internal/pkg/errs"
)

// GetOrderByIDQueryHandler resolves a single order into its view.
type GetOrderByIDQueryHandler struct {
	reader OrdersReader
}

// NewGetOrderByIDQueryHandler creates a handler for single-order lookups.
func NewGetOrderByIDQueryHandler(reader OrdersReader) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{reader: reader}
}

// Handle executes the lookup. An absent ID yields an ObjectNotFoundError
// the caller can classify with errors.Is(err, errs.ErrObjectNotFound).
func (h GetOrderByIDQueryHandler) Handle(_ context.Context, query GetOrderByIDQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, ok := h.reader.FindByID(query.OrderID())
	if !ok {
		return OrderView{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return newOrderView(o), nil
}
