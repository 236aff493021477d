package inquiry

import (
	"context"
	"errors"
	"strings"

	"coffee-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const inquiryColumns = `id::text, kind, name, email, business_name, phone, business_type, volume, subject, message, created_at`

func (r *postgresRepo) Create(ctx context.Context, in domain.Inquiry) (*domain.Inquiry, error) {
	const q = `
INSERT INTO inquiries (
    id, kind, name, email, business_name, phone, business_type, volume, subject, message
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + inquiryColumns
	return r.scanInquiry(r.pool.QueryRow(
		ctx,
		q,
		in.ID,
		in.Kind,
		in.Name,
		strings.ToLower(in.Email),
		in.BusinessName,
		in.Phone,
		in.BusinessType,
		in.Volume,
		in.Subject,
		in.Message,
	))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	q := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = $1 LIMIT 1`
	return r.scanInquiry(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) ListRecent(ctx context.Context, kind string, limit int) ([]domain.Inquiry, error) {
	if limit <= 0 {
		limit = 50
	}
	q := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE kind = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, q, kind, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Inquiry{}
	for rows.Next() {
		in, err := r.scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *in)
	}
	return out, rows.Err()
}

func (r *postgresRepo) scanInquiry(row pgx.Row) (*domain.Inquiry, error) {
	var in domain.Inquiry
	err := row.Scan(
		&in.ID,
		&in.Kind,
		&in.Name,
		&in.Email,
		&in.BusinessName,
		&in.Phone,
		&in.BusinessType,
		&in.Volume,
		&in.Subject,
		&in.Message,
		&in.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Warn("inquiry repo: scan error", zap.Error(err))
		return nil, err
	}
	return &in, nil
}
