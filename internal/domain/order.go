package domain

import "time"

// OrderSummary is the derived pricing breakdown for a checkout quote.
type OrderSummary struct {
	Subtotal   float64 `json:"subtotal"`
	Shipping   float64 `json:"shipping"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grand_total"`
	ItemCount  int     `json:"item_count"`
}

// Order is a confirmed, persisted purchase. Lines are the cart snapshot
// at the moment the order was placed.
type Order struct {
	ID        string       `json:"id"`
	Lines     []CartLine   `json:"lines"`
	Summary   OrderSummary `json:"summary"`
	CreatedAt time.Time    `json:"created_at"`
}
