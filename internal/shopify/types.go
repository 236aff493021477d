package shopify

import (
	"fmt"

	"coffee-storefront/internal/domain"
)

// Wire types mirror the GraphQL selections in queries.go. The validate tags
// are the schema check applied before anything reaches domain types.

type moneyV2 struct {
	Amount       string `json:"amount" validate:"required,numeric"`
	CurrencyCode string `json:"currencyCode" validate:"required,iso4217"`
}

func (m moneyV2) toDomain() (domain.Money, error) {
	return domain.ParseMoney(m.Amount, m.CurrencyCode)
}

type imageNode struct {
	URL     string  `json:"url" validate:"required,url"`
	AltText *string `json:"altText"`
}

func (i imageNode) toDomain() domain.Image {
	img := domain.Image{URL: i.URL}
	if i.AltText != nil {
		img.AltText = *i.AltText
	}
	return img
}

type imageConnection struct {
	Edges []struct {
		Node imageNode `json:"node"`
	} `json:"edges" validate:"dive"`
}

type variantNode struct {
	ID               string  `json:"id" validate:"required"`
	Title            string  `json:"title"`
	SKU              string  `json:"sku"`
	Price            moneyV2 `json:"price"`
	AvailableForSale bool    `json:"availableForSale"`
}

// availabilityNode is the trimmed variant selection used in collection listings.
type availabilityNode struct {
	AvailableForSale bool `json:"availableForSale"`
}

type variantConnection struct {
	Edges []struct {
		Node variantNode `json:"node"`
	} `json:"edges" validate:"dive"`
}

type availabilityConnection struct {
	Edges []struct {
		Node availabilityNode `json:"node"`
	} `json:"edges"`
}

type collectionRefConnection struct {
	Edges []struct {
		Node struct {
			Handle string `json:"handle" validate:"required"`
			Title  string `json:"title"`
		} `json:"node"`
	} `json:"edges" validate:"dive"`
}

type priceRange struct {
	MinVariantPrice moneyV2 `json:"minVariantPrice"`
}

type productNode struct {
	ID            string                   `json:"id" validate:"required"`
	Handle        string                   `json:"handle" validate:"required"`
	Title         string                   `json:"title" validate:"required"`
	Description   string                   `json:"description"`
	Vendor        string                   `json:"vendor"`
	Tags          []string                 `json:"tags"`
	FeaturedImage *imageNode               `json:"featuredImage"`
	PriceRange    *priceRange              `json:"priceRange"`
	Images        *imageConnection         `json:"images"`
	Variants      *variantConnection       `json:"variants"`
	Availability  *availabilityConnection  `json:"availability"`
	Collections   *collectionRefConnection `json:"collections"`
}

func (p productNode) toDomain() (domain.Product, error) {
	out := domain.Product{
		ID:          p.ID,
		Handle:      p.Handle,
		Title:       p.Title,
		Description: p.Description,
		Vendor:      p.Vendor,
		Tags:        p.Tags,
		Images:      []domain.Image{},
		Variants:    []domain.Variant{},
		Collections: []domain.CollectionRef{},
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if p.FeaturedImage != nil {
		img := p.FeaturedImage.toDomain()
		out.FeaturedImage = &img
	}
	if p.PriceRange != nil {
		min, err := p.PriceRange.MinVariantPrice.toDomain()
		if err != nil {
			return domain.Product{}, fmt.Errorf("product %s min price: %w", p.Handle, err)
		}
		out.MinPrice = &min
	}
	if p.Images != nil {
		for _, e := range p.Images.Edges {
			out.Images = append(out.Images, e.Node.toDomain())
		}
	}
	if p.Variants != nil {
		for _, e := range p.Variants.Edges {
			price, err := e.Node.Price.toDomain()
			if err != nil {
				return domain.Product{}, fmt.Errorf("variant %s price: %w", e.Node.ID, err)
			}
			out.Variants = append(out.Variants, domain.Variant{
				ID:               e.Node.ID,
				Title:            e.Node.Title,
				SKU:              e.Node.SKU,
				Price:            price,
				AvailableForSale: e.Node.AvailableForSale,
			})
		}
	}
	if p.Availability != nil && len(p.Availability.Edges) > 0 {
		available := p.Availability.Edges[0].Node.AvailableForSale
		out.AvailableForSale = &available
	}
	if p.Collections != nil {
		for _, e := range p.Collections.Edges {
			out.Collections = append(out.Collections, domain.CollectionRef{Handle: e.Node.Handle, Title: e.Node.Title})
		}
	}
	return out, nil
}

type productConnection struct {
	Edges []struct {
		Node productNode `json:"node"`
	} `json:"edges" validate:"dive"`
}

func (c productConnection) toDomain() ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(c.Edges))
	for _, e := range c.Edges {
		p, err := e.Node.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

type collectionNode struct {
	ID          string             `json:"id" validate:"required"`
	Handle      string             `json:"handle" validate:"required"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Image       *imageNode         `json:"image"`
	Products    *productConnection `json:"products"`
}

func (c collectionNode) toDomain() (domain.Collection, error) {
	out := domain.Collection{
		ID:          c.ID,
		Handle:      c.Handle,
		Title:       c.Title,
		Description: c.Description,
	}
	if c.Image != nil {
		img := c.Image.toDomain()
		out.Image = &img
	}
	if c.Products != nil {
		products, err := c.Products.toDomain()
		if err != nil {
			return domain.Collection{}, fmt.Errorf("collection %s: %w", c.Handle, err)
		}
		out.Products = products
	}
	return out, nil
}

type checkoutNode struct {
	ID        string `json:"id" validate:"required"`
	WebURL    string `json:"webUrl" validate:"required,url"`
	LineItems *struct {
		Edges []struct {
			Node struct {
				Title    string `json:"title"`
				Quantity int    `json:"quantity" validate:"gte=0"`
			} `json:"node"`
		} `json:"edges" validate:"dive"`
	} `json:"lineItems"`
	TotalPriceV2 *moneyV2 `json:"totalPriceV2"`
}

// CheckoutLine is a line as the commerce platform sees it.
type CheckoutLine struct {
	Title    string
	Quantity int
}

// Checkout is the remote checkout session.
type Checkout struct {
	ID         string
	WebURL     string
	Lines      []CheckoutLine
	TotalPrice *domain.Money
}

func (c checkoutNode) toCheckout() (*Checkout, error) {
	out := &Checkout{ID: c.ID, WebURL: c.WebURL}
	if c.LineItems != nil {
		for _, e := range c.LineItems.Edges {
			out.Lines = append(out.Lines, CheckoutLine{Title: e.Node.Title, Quantity: e.Node.Quantity})
		}
	}
	if c.TotalPriceV2 != nil {
		total, err := c.TotalPriceV2.toDomain()
		if err != nil {
			return nil, fmt.Errorf("checkout total: %w", err)
		}
		out.TotalPrice = &total
	}
	return out, nil
}

// checkoutPayload is the common shape of every checkout mutation result.
type checkoutPayload struct {
	Checkout   *checkoutNode `json:"checkout"`
	UserErrors UserErrors    `json:"userErrors"`
}

func (p *checkoutPayload) result() (*Checkout, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: missing mutation payload", ErrMalformedResponse)
	}
	if len(p.UserErrors) > 0 {
		return nil, p.UserErrors
	}
	if p.Checkout == nil {
		return nil, fmt.Errorf("%w: missing checkout", ErrMalformedResponse)
	}
	co, err := p.Checkout.toCheckout()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return co, nil
}

type sellingPlanGroupNode struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required"`
	Options []struct {
		Name   string   `json:"name"`
		Values []string `json:"values"`
	} `json:"options"`
	SellingPlans struct {
		Edges []struct {
			Node struct {
				ID              string `json:"id" validate:"required"`
				Name            string `json:"name"`
				PricingPolicies []struct {
					AdjustmentType  string `json:"adjustmentType"`
					AdjustmentValue *struct {
						Percentage *float64 `json:"percentage"`
					} `json:"adjustmentValue"`
				} `json:"pricingPolicies"`
			} `json:"node"`
		} `json:"edges" validate:"dive"`
	} `json:"sellingPlans"`
	Products struct {
		Edges []struct {
			Node struct {
				ID string `json:"id"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"products"`
}

func (g sellingPlanGroupNode) toDomain() domain.SellingPlanGroup {
	out := domain.SellingPlanGroup{
		ID:         g.ID,
		Name:       g.Name,
		Options:    []domain.SellingPlanOption{},
		Plans:      []domain.SellingPlan{},
		ProductIDs: []string{},
	}
	for _, o := range g.Options {
		out.Options = append(out.Options, domain.SellingPlanOption{Name: o.Name, Values: o.Values})
	}
	for _, e := range g.SellingPlans.Edges {
		plan := domain.SellingPlan{ID: e.Node.ID, Name: e.Node.Name}
		for _, pp := range e.Node.PricingPolicies {
			if pp.AdjustmentType == "" {
				continue
			}
			plan.AdjustmentType = pp.AdjustmentType
			if pp.AdjustmentValue != nil {
				plan.PercentageOff = pp.AdjustmentValue.Percentage
			}
			break
		}
		out.Plans = append(out.Plans, plan)
	}
	for _, e := range g.Products.Edges {
		out.ProductIDs = append(out.ProductIDs, e.Node.ID)
	}
	return out
}
