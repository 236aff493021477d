package inquiry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coffee-storefront/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type inquiryRepo interface {
	Create(ctx context.Context, in domain.Inquiry) (*domain.Inquiry, error)
}

// Service accepts wholesale and contact form submissions.
type Service struct {
	repo     inquiryRepo
	logger   *zap.Logger
	validate *validator.Validate
}

func New(repo inquiryRepo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// WholesaleInput is the wholesale account request form.
type WholesaleInput struct {
	BusinessName string `json:"businessName" validate:"required,max=200"`
	ContactName  string `json:"contactName" validate:"required,max=200"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty,max=50"`
	BusinessType string `json:"businessType" validate:"omitempty,oneof=cafe restaurant retail office other"`
	Volume       string `json:"volume" validate:"omitempty,max=50"`
	Message      string `json:"message" validate:"max=5000"`
}

// ContactInput is the general contact form.
type ContactInput struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=300"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (s *Service) SubmitWholesale(ctx context.Context, in WholesaleInput) (*domain.Inquiry, error) {
	in.BusinessName = strings.TrimSpace(in.BusinessName)
	in.ContactName = strings.TrimSpace(in.ContactName)
	in.Email = strings.TrimSpace(in.Email)
	in.BusinessType = strings.ToLower(strings.TrimSpace(in.BusinessType))
	if err := s.check(in); err != nil {
		return nil, err
	}
	return s.save(ctx, domain.Inquiry{
		Kind:         domain.InquiryKindWholesale,
		Name:         in.ContactName,
		Email:        in.Email,
		BusinessName: in.BusinessName,
		Phone:        strings.TrimSpace(in.Phone),
		BusinessType: in.BusinessType,
		Volume:       strings.TrimSpace(in.Volume),
		Message:      strings.TrimSpace(in.Message),
	})
}

func (s *Service) SubmitContact(ctx context.Context, in ContactInput) (*domain.Inquiry, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
	if err := s.check(in); err != nil {
		return nil, err
	}
	return s.save(ctx, domain.Inquiry{
		Kind:    domain.InquiryKindContact,
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	})
}

func (s *Service) save(ctx context.Context, in domain.Inquiry) (*domain.Inquiry, error) {
	in.ID = uuid.NewString()
	saved, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("save %s inquiry: %w", in.Kind, err)
	}
	s.logger.Info("inquiry received",
		zap.String("inquiry_id", saved.ID),
		zap.String("kind", saved.Kind))
	return saved, nil
}

// check runs the validate tags and reports failures as ErrInvalidInput with
// the offending json field names.
func (s *Service) check(v interface{}) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", jsonName(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(fields, ", "))
}

func jsonName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
