package inquiry

import (
	"context"
	"errors"
	"strings"
	"testing"

	"coffee-storefront/internal/domain"
	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubRepo struct {
	created []domain.Inquiry
	err     error
}

func (s *stubRepo) Create(ctx context.Context, in domain.Inquiry) (*domain.Inquiry, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, in)
	return &in, nil
}

func TestSubmitWholesale(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	repo := &stubRepo{}
	svc := New(repo, zap.New(core))
	faker := gofakeit.New(7)

	got, err := svc.SubmitWholesale(context.Background(), WholesaleInput{
		BusinessName: " " + faker.Company() + " ",
		ContactName:  faker.Name(),
		Email:        faker.Email(),
		BusinessType: "Cafe",
		Volume:       "10-50",
		Message:      "House blend please",
	})
	if err != nil {
		t.Fatalf("SubmitWholesale: %v", err)
	}
	if got.Kind != domain.InquiryKindWholesale || got.ID == "" || got.BusinessType != "cafe" {
		t.Fatalf("unexpected inquiry %+v", got)
	}
	if strings.HasPrefix(got.BusinessName, " ") {
		t.Fatalf("business name not trimmed: %q", got.BusinessName)
	}
	if logs.FilterMessage("inquiry received").Len() != 1 {
		t.Fatalf("expected one log entry")
	}
}

func TestSubmitWholesaleInvalid(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, nil)

	_, err := svc.SubmitWholesale(context.Background(), WholesaleInput{
		ContactName:  "Sam",
		Email:        "not-an-email",
		BusinessType: "spaceship",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	for _, field := range []string{"businessName", "email", "businessType"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("error %q does not name %s", err, field)
		}
	}
	if len(repo.created) != 0 {
		t.Fatalf("invalid inquiry persisted")
	}
}

func TestSubmitContact(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, nil)

	_, err := svc.SubmitContact(context.Background(), ContactInput{Name: "Sam", Email: "sam@example.com", Subject: "Order", Message: "   "})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("blank message accepted: %v", err)
	}

	got, err := svc.SubmitContact(context.Background(), ContactInput{Name: "Sam", Email: "sam@example.com", Subject: "Order", Message: "Where is it?"})
	if err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}
	if got.Kind != domain.InquiryKindContact || got.Subject != "Order" {
		t.Fatalf("unexpected inquiry %+v", got)
	}
}

func TestSubmitRepoError(t *testing.T) {
	repoErr := errors.New("db down")
	svc := New(&stubRepo{err: repoErr}, nil)
	_, err := svc.SubmitContact(context.Background(), ContactInput{Name: "Sam", Email: "sam@example.com", Subject: "Hi", Message: "Hello"})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
