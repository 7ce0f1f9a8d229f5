package queries

import "context"

// GetAllOrdersQueryHandler projects the whole registry into order views,
// in insertion order.
type GetAllOrdersQueryHandler struct {
	reader OrdersReader
}

// NewGetAllOrdersQueryHandler creates a handler for full order listings.
func NewGetAllOrdersQueryHandler(reader OrdersReader) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{reader: reader}
}

// Handle executes the query. The result is never nil; an empty registry
// yields an empty slice.
func (h GetAllOrdersQueryHandler) Handle(_ context.Context, query GetAllOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := h.reader.ListAll()
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}

	return views, nil
}
