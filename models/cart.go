package models

// CartItem is one product line in a cart. Name, image URL and unit price are
// snapshots taken from the catalog when the line was created; a later catalog
// price change does not touch existing lines.
type CartItem struct {
	OrchidID   string  `json:"orchid_id"`
	OrchidName string  `json:"orchid_name"`
	OrchidURL  string  `json:"orchid_url"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
}

// ShoppingCart is the snapshot view returned by every cart operation. Totals
// are computed at read time, never stored.
type ShoppingCart struct {
	AccountID   string     `json:"account_id"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	TotalItems  int        `json:"total_items"`
}
