package exporter

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"coffee-storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

type stubLister struct {
	products  []domain.Product
	err       error
	lastFirst int
}

func (s *stubLister) ListProducts(_ context.Context, first int) ([]domain.Product, error) {
	s.lastFirst = first
	return s.products, s.err
}

func usd(amount string) domain.Money {
	return domain.Money{Amount: decimal.RequireFromString(amount), Currency: currency.USD}
}

func TestCSVExporter_Run(t *testing.T) {
	lister := &stubLister{products: []domain.Product{
		{
			Handle:        "ethiopia-guji",
			Title:         "Ethiopia Guji",
			Description:   "Stone fruit, jasmine",
			FeaturedImage: &domain.Image{URL: "https://cdn.example.com/guji-1.jpg"},
			Images: []domain.Image{
				{URL: "https://cdn.example.com/guji-1.jpg"},
				{URL: "https://cdn.example.com/guji-2.jpg"},
			},
			Variants: []domain.Variant{
				{ID: "gid://shopify/ProductVariant/1", SKU: "GUJI-12", Price: usd("22.00")},
				{ID: "gid://shopify/ProductVariant/2", SKU: "GUJI-32", Price: usd("48.50")},
			},
		},
		{
			Handle:   "house-blend",
			Title:    "House Blend",
			Variants: []domain.Variant{{ID: "gid://shopify/ProductVariant/3", SKU: "HOUSE-12", Price: usd("16")}},
		},
	}}

	var buf bytes.Buffer
	count, err := NewCSVExporter(&buf, lister).Run(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 50, lister.lastFirst)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{"ethiopia-guji", "Ethiopia Guji", "Stone fruit, jasmine", "gid://shopify/ProductVariant/1", "GUJI-12", "2200", "USD", "https://cdn.example.com/guji-1.jpg"}, records[1])
	assert.Equal(t, []string{"", "", "", "gid://shopify/ProductVariant/2", "GUJI-32", "4850", "USD", ""}, records[2])
	assert.Equal(t, []string{"", "", "", "", "", "", "", "https://cdn.example.com/guji-2.jpg"}, records[3])
	assert.Equal(t, "house-blend", records[4][0])
	assert.Equal(t, "1600", records[4][5])
}

func TestCSVExporter_RunListError(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewCSVExporter(&buf, &stubLister{err: errors.New("boom")}).Run(context.Background(), 10)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestCentAmountUsesMinorUnits(t *testing.T) {
	rows := productRows(domain.Product{Handle: "kyoto-roast", Variants: []domain.Variant{
		{ID: "v-usd", Price: usd("19.99")},
		{ID: "v-jpy", Price: domain.Money{Amount: decimal.RequireFromString("1200"), Currency: currency.JPY}},
	}})
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1999", "USD"}, rows[0][5:7])
	assert.Equal(t, []string{"1200", "JPY"}, rows[1][5:7])
}

func TestProductWithoutVariants(t *testing.T) {
	rows := productRows(domain.Product{Handle: "gift-card", Title: "Gift Card"})
	require.Len(t, rows, 1)
	assert.Equal(t, "gift-card", rows[0][0])
	assert.Empty(t, rows[0][5])
}
