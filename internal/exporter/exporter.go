package exporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"coffee-storefront/internal/domain"
)

// Header is the column layout written by CSVExporter.
var Header = []string{
	"key",
	"name.en",
	"description.en",
	"variants.id",
	"variants.sku",
	"variants.prices.value.centAmount",
	"variants.prices.value.currencyCode",
	"variants.images.url",
}

type productLister interface {
	ListProducts(ctx context.Context, first int) ([]domain.Product, error)
}

// CSVExporter writes catalog products as CSV. The first row of a product
// carries its key, name and description. Further variants get their own
// rows, and images beyond the first are written as continuation rows.
type CSVExporter struct {
	writer *csv.Writer
	source productLister
}

func NewCSVExporter(w io.Writer, source productLister) *CSVExporter {
	return &CSVExporter{
		writer: csv.NewWriter(w),
		source: source,
	}
}

// Run fetches up to first products and writes them. It returns the number
// of products exported.
func (e *CSVExporter) Run(ctx context.Context, first int) (int, error) {
	products, err := e.source.ListProducts(ctx, first)
	if err != nil {
		return 0, fmt.Errorf("list products: %w", err)
	}
	if err := e.Write(products); err != nil {
		return 0, err
	}
	return len(products), nil
}

// Write emits the header followed by every product.
func (e *CSVExporter) Write(products []domain.Product) error {
	if err := e.writer.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range products {
		for _, record := range productRows(p) {
			if err := e.writer.Write(record); err != nil {
				return fmt.Errorf("write product %q: %w", p.Handle, err)
			}
		}
	}
	e.writer.Flush()
	return e.writer.Error()
}

func productRows(p domain.Product) [][]string {
	images := imageURLs(p)
	var rows [][]string

	variants := p.Variants
	if len(variants) == 0 {
		// Keep products without variant data visible in the export.
		variants = []domain.Variant{{}}
	}
	for i, v := range variants {
		row := make([]string, len(Header))
		if i == 0 {
			row[0] = p.Handle
			row[1] = p.Title
			row[2] = p.Description
			if len(images) > 0 {
				row[7] = images[0]
			}
		}
		row[3] = v.ID
		row[4] = v.SKU
		if v.ID != "" {
			row[5] = fmt.Sprint(v.Price.MinorUnits())
			row[6] = v.Price.Currency.String()
		}
		rows = append(rows, row)
	}

	for _, url := range images[min(1, len(images)):] {
		row := make([]string, len(Header))
		row[7] = url
		rows = append(rows, row)
	}
	return rows
}

func imageURLs(p domain.Product) []string {
	var urls []string
	seen := map[string]bool{}
	add := func(u string) {
		if u != "" && !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}
	if p.FeaturedImage != nil {
		add(p.FeaturedImage.URL)
	}
	for _, img := range p.Images {
		add(img.URL)
	}
	return urls
}
