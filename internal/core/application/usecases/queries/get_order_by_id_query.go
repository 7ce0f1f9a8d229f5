package queries

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetOrderByIDQueryIsNotConstructed = errors.New(
		"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
	)
	ErrQueryOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// GetOrderByIDQuery retrieves a single order by its identifier.
type GetOrderByIDQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for the identified order.
func NewGetOrderByIDQuery(orderID int64) (GetOrderByIDQuery, error) {
	query := GetOrderByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier being queried.
func (q GetOrderByIDQuery) OrderID() int64 {
	return q.orderID
}

func (q *GetOrderByIDQuery) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrQueryOrderIDIsInvalid
	}
	q.orderID = orderID
	return nil
}
