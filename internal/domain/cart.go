package domain

import "github.com/shopspring/decimal"

// CartLine is one variant in a visitor's cart. VariantID is unique within a
// cart and Quantity is always at least 1.
type CartLine struct {
	VariantID     string          `json:"variantId"`
	ProductID     string          `json:"productId"`
	Title         string          `json:"title"`
	VariantTitle  string          `json:"variantTitle"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	Image         string          `json:"image,omitempty"`
	Handle        string          `json:"handle"`
	SellingPlanID string          `json:"sellingPlanId,omitempty"`
}

// LineTotal is Price * Quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartState is a point-in-time copy of a coordinator's cart.
type CartState struct {
	Lines          []CartLine `json:"lines"`
	CheckoutID     *string    `json:"checkoutId,omitempty"`
	CheckoutURL    *string    `json:"checkoutUrl,omitempty"`
	IsSyncing      bool       `json:"isSyncing"`
	TotalItemCount int        `json:"totalItemCount"`
	TotalPrice     Money      `json:"totalPrice"`
}
