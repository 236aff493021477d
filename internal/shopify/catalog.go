package shopify

import (
	"context"
	"fmt"
	"strings"

	"coffee-storefront/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 250
	// FeaturedCollectionHandle is the collection the landing page features.
	FeaturedCollectionHandle = "featured"
	featuredProductCount     = 4
)

func pageSize(first int) int {
	switch {
	case first <= 0:
		return defaultPageSize
	case first > maxPageSize:
		return maxPageSize
	default:
		return first
	}
}

// ListProducts returns the first N products. Zero matches yield an empty slice.
func (c *Client) ListProducts(ctx context.Context, first int) ([]domain.Product, error) {
	var data struct {
		Products productConnection `json:"products"`
	}
	if err := c.do(ctx, queryProducts, map[string]interface{}{"first": pageSize(first)}, &data); err != nil {
		return nil, err
	}
	products, err := data.Products.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return products, nil
}

// GetProductByHandle returns nil, nil when no product has the handle.
func (c *Client) GetProductByHandle(ctx context.Context, handle string) (*domain.Product, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, nil
	}
	var data struct {
		Product *productNode `json:"product"`
	}
	if err := c.do(ctx, queryProductByHandle, map[string]interface{}{"handle": handle}, &data); err != nil {
		return nil, err
	}
	if data.Product == nil {
		return nil, nil
	}
	p, err := data.Product.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &p, nil
}

// ListCollections returns the first N collections without their products.
func (c *Client) ListCollections(ctx context.Context, first int) ([]domain.Collection, error) {
	var data struct {
		Collections struct {
			Edges []struct {
				Node collectionNode `json:"node"`
			} `json:"edges" validate:"dive"`
		} `json:"collections"`
	}
	if err := c.do(ctx, queryCollections, map[string]interface{}{"first": pageSize(first)}, &data); err != nil {
		return nil, err
	}
	out := make([]domain.Collection, 0, len(data.Collections.Edges))
	for _, e := range data.Collections.Edges {
		col, err := e.Node.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		out = append(out, col)
	}
	return out, nil
}

// GetCollectionByHandle returns the collection with its first products, or
// nil, nil when it does not exist.
func (c *Client) GetCollectionByHandle(ctx context.Context, handle string, productsFirst int) (*domain.Collection, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, nil
	}
	var data struct {
		Collection *collectionNode `json:"collection"`
	}
	vars := map[string]interface{}{"handle": handle, "productsFirst": pageSize(productsFirst)}
	if err := c.do(ctx, queryCollectionByHandle, vars, &data); err != nil {
		return nil, err
	}
	if data.Collection == nil {
		return nil, nil
	}
	col, err := data.Collection.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if col.Products == nil {
		col.Products = []domain.Product{}
	}
	return &col, nil
}

// FeaturedProducts returns the products of the featured collection, or an
// empty slice when the store has none.
func (c *Client) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	col, err := c.GetCollectionByHandle(ctx, FeaturedCollectionHandle, featuredProductCount)
	if err != nil {
		return nil, err
	}
	if col == nil {
		return []domain.Product{}, nil
	}
	return col.Products, nil
}

// ListSellingPlanGroups returns the subscription plan groups offered by the store.
func (c *Client) ListSellingPlanGroups(ctx context.Context) ([]domain.SellingPlanGroup, error) {
	var data struct {
		SellingPlanGroups struct {
			Edges []struct {
				Node sellingPlanGroupNode `json:"node"`
			} `json:"edges" validate:"dive"`
		} `json:"sellingPlanGroups"`
	}
	if err := c.do(ctx, querySellingPlanGroups, nil, &data); err != nil {
		return nil, err
	}
	out := make([]domain.SellingPlanGroup, 0, len(data.SellingPlanGroups.Edges))
	for _, e := range data.SellingPlanGroups.Edges {
		out = append(out, e.Node.toDomain())
	}
	return out, nil
}
