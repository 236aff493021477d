package domain

type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
}

type Variant struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	SKU              string `json:"sku,omitempty"`
	Price            Money  `json:"price"`
	AvailableForSale bool   `json:"availableForSale"`
}

// CollectionRef is the lightweight collection link carried on a product.
type CollectionRef struct {
	Handle string `json:"handle"`
	Title  string `json:"title"`
}

// Product is a read-only projection of a commerce platform product.
type Product struct {
	ID            string          `json:"id"`
	Handle        string          `json:"handle"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Vendor        string          `json:"vendor,omitempty"`
	Tags          []string        `json:"tags"`
	FeaturedImage *Image          `json:"featuredImage,omitempty"`
	MinPrice      *Money          `json:"minPrice,omitempty"`
	Images        []Image         `json:"images"`
	Variants      []Variant       `json:"variants"`
	Collections   []CollectionRef `json:"collections"`
	// AvailableForSale is set only by listings that fetch availability
	// without full variant data.
	AvailableForSale *bool `json:"availableForSale,omitempty"`
}

// Collection is a read-only projection of a commerce platform collection.
type Collection struct {
	ID          string    `json:"id"`
	Handle      string    `json:"handle"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Image       *Image    `json:"image,omitempty"`
	Products    []Product `json:"products,omitempty"`
}

// SellingPlan describes one subscription cadence. Billing is owned by the
// commerce platform; only the identifier and advertised discount are kept.
type SellingPlan struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	AdjustmentType string   `json:"adjustmentType,omitempty"`
	PercentageOff  *float64 `json:"percentageOff,omitempty"`
}

type SellingPlanOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type SellingPlanGroup struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Options    []SellingPlanOption `json:"options"`
	Plans      []SellingPlan       `json:"plans"`
	ProductIDs []string            `json:"productIds"`
}
