package textstore

import (
	"fmt"
	"strconv"
	"strings"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"
)

// Wire format, one record per line:
//
//	id;base;sauce;cheese;crust;topping1|topping2;seasoning1|seasoning2;total;STATE_NAME
//
// The field separator is ";" and the list separator is "|". Both are part
// of the documented store schema, so composition fields must not contain
// them. Totals are written with two decimals. List ordering is preserved
// exactly as stored.
const (
	fieldSeparator = ";"
	listSeparator  = "|"
	fieldCount     = 9
)

// serializeOrder renders an order as a single store record.
func serializeOrder(o *order.Order) string {
	c := o.Composition()

	fields := []string{
		strconv.FormatInt(o.ID(), 10),
		c.Base(),
		c.Sauce(),
		c.Cheese(),
		c.Crust(),
		strings.Join(c.Toppings(), listSeparator),
		strings.Join(c.Seasonings(), listSeparator),
		strconv.FormatFloat(o.Total(), 'f', 2, 64),
		o.Status().String(),
	}

	return strings.Join(fields, fieldSeparator)
}

// parseOrder rehydrates an order from a store record. An unrecognized
// state name falls back to Received; any other malformed field is an
// error, letting the caller skip the line.
func parseOrder(line string) (*order.Order, error) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) < fieldCount {
		return nil, fmt.Errorf("record has %d fields, want %d", len(parts), fieldCount)
	}

	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid order id %q: %w", parts[0], err)
	}

	total, err := strconv.ParseFloat(parts[7], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid total %q: %w", parts[7], err)
	}

	composition := pizza.NewBuilder().
		WithBase(parts[1]).
		WithSauce(parts[2]).
		WithCheese(parts[3]).
		WithCrust(parts[4]).
		AddToppings(splitList(parts[5])).
		AddSeasonings(splitList(parts[6])).
		Build()

	return order.RestoreOrder(id, composition, total, order.ParseStatus(parts[8]))
}

// splitList splits a "|"-separated list field, yielding nil for an empty
// field rather than a single empty element.
func splitList(field string) []string {
	if field == "" {
		return nil
	}
	return strings.Split(field, listSeparator)
}
