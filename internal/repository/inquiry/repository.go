package inquiry

import (
	"context"

	"coffee-storefront/internal/domain"
)

// Repository persists form submissions.
type Repository interface {
	Create(ctx context.Context, in domain.Inquiry) (*domain.Inquiry, error)
	GetByID(ctx context.Context, id string) (*domain.Inquiry, error)
	// ListRecent returns the newest inquiries of kind, newest first.
	ListRecent(ctx context.Context, kind string, limit int) ([]domain.Inquiry, error)
}
