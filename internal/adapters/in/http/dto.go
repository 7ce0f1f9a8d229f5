package http

// NewOrderRequest is the payload for creating an order.
type NewOrderRequest struct {
	Base       string   `json:"base"`
	Sauce      string   `json:"sauce"`
	Cheese     string   `json:"cheese"`
	Crust      string   `json:"crust"`
	Toppings   []string `json:"toppings,omitempty"`
	Seasonings []string `json:"seasonings,omitempty"`
}

// OrderResponse is the wire representation of one order.
type OrderResponse struct {
	ID         int64    `json:"id"`
	Base       string   `json:"base"`
	Sauce      string   `json:"sauce"`
	Cheese     string   `json:"cheese"`
	Crust      string   `json:"crust"`
	Toppings   []string `json:"toppings"`
	Seasonings []string `json:"seasonings"`
	Total      float64  `json:"total"`
	State      string   `json:"state"`
	Terminal   bool     `json:"terminal"`
}

// PricingRequest switches the pricing policy for future orders.
type PricingRequest struct {
	Promotional bool `json:"promotional"`
}

// ReceiptResponse returns where the generated ticket was written.
type ReceiptResponse struct {
	Path string `json:"path"`
}

// OrderLogResponse returns the legacy-log block recorded for an order.
type OrderLogResponse struct {
	OrderID int64  `json:"orderId"`
	Log     string `json:"log"`
}

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
