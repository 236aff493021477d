package catalog

import (
	"context"

	"coffee-storefront/internal/domain"
	"golang.org/x/sync/errgroup"
)

type catalogClient interface {
	ListProducts(ctx context.Context, first int) ([]domain.Product, error)
	GetProductByHandle(ctx context.Context, handle string) (*domain.Product, error)
	ListCollections(ctx context.Context, first int) ([]domain.Collection, error)
	GetCollectionByHandle(ctx context.Context, handle string, productsFirst int) (*domain.Collection, error)
	FeaturedProducts(ctx context.Context) ([]domain.Product, error)
	ListSellingPlanGroups(ctx context.Context) ([]domain.SellingPlanGroup, error)
}

// Service reads catalog projections from the commerce platform. Lists are
// never nil and single lookups return nil when nothing matches.
type Service struct {
	client catalogClient
}

func New(client catalogClient) *Service {
	return &Service{client: client}
}

// Overview is the shop page: products and collections fetched together.
type Overview struct {
	Products    []domain.Product    `json:"products"`
	Collections []domain.Collection `json:"collections"`
}

func (s *Service) Products(ctx context.Context, first int) ([]domain.Product, error) {
	products, err := s.client.ListProducts(ctx, first)
	if err != nil {
		return nil, err
	}
	return nonNil(products), nil
}

func (s *Service) Product(ctx context.Context, handle string) (*domain.Product, error) {
	return s.client.GetProductByHandle(ctx, handle)
}

func (s *Service) Collections(ctx context.Context, first int) ([]domain.Collection, error) {
	cols, err := s.client.ListCollections(ctx, first)
	if err != nil {
		return nil, err
	}
	if cols == nil {
		cols = []domain.Collection{}
	}
	return cols, nil
}

func (s *Service) Collection(ctx context.Context, handle string, productsFirst int) (*domain.Collection, error) {
	return s.client.GetCollectionByHandle(ctx, handle, productsFirst)
}

func (s *Service) Featured(ctx context.Context) ([]domain.Product, error) {
	products, err := s.client.FeaturedProducts(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(products), nil
}

func (s *Service) SubscriptionPlans(ctx context.Context) ([]domain.SellingPlanGroup, error) {
	groups, err := s.client.ListSellingPlanGroups(ctx)
	if err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []domain.SellingPlanGroup{}
	}
	return groups, nil
}

// Overview fetches products and collections concurrently. The first failure
// cancels the other request.
func (s *Service) Overview(ctx context.Context, first int) (*Overview, error) {
	var out Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := s.Products(gctx, first)
		out.Products = products
		return err
	})
	g.Go(func() error {
		cols, err := s.Collections(gctx, first)
		out.Collections = cols
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func nonNil(products []domain.Product) []domain.Product {
	if products == nil {
		return []domain.Product{}
	}
	return products
}
