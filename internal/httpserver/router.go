package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"coffee-storefront/internal/domain"
	"coffee-storefront/internal/logger"
	"coffee-storefront/internal/service/cart"
	"coffee-storefront/internal/service/catalog"
	"coffee-storefront/internal/service/inquiry"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type catalogService interface {
	Products(ctx context.Context, first int) ([]domain.Product, error)
	Product(ctx context.Context, handle string) (*domain.Product, error)
	Collections(ctx context.Context, first int) ([]domain.Collection, error)
	Collection(ctx context.Context, handle string, productsFirst int) (*domain.Collection, error)
	Featured(ctx context.Context) ([]domain.Product, error)
	SubscriptionPlans(ctx context.Context) ([]domain.SellingPlanGroup, error)
	Overview(ctx context.Context, first int) (*catalog.Overview, error)
}

type contentService interface {
	HeroSlides(ctx context.Context, preview bool) ([]domain.HeroSlide, error)
	GalleryItems(ctx context.Context, preview bool) ([]domain.GalleryItem, error)
	PageBySlug(ctx context.Context, slug string, preview bool) (*domain.Page, error)
	BlogPosts(ctx context.Context, limit int, preview bool) ([]domain.BlogPost, error)
	BlogPostBySlug(ctx context.Context, slug string, preview bool) (*domain.BlogPost, error)
	Testimonials(ctx context.Context, preview bool) ([]domain.Testimonial, error)
	AnnouncementBar(ctx context.Context, preview bool) (*domain.AnnouncementBar, error)
	SiteSettings(ctx context.Context, preview bool) (*domain.SiteSettings, error)
	FAQs(ctx context.Context, category string, preview bool) ([]domain.FAQ, error)
}

type cartRegistry interface {
	Get(ctx context.Context, sessionID string) *cart.Coordinator
}

type inquiryService interface {
	SubmitWholesale(ctx context.Context, in inquiry.WholesaleInput) (*domain.Inquiry, error)
	SubmitContact(ctx context.Context, in inquiry.ContactInput) (*domain.Inquiry, error)
}

type visitorService interface {
	Issue() (string, error)
	Validate(raw string) (string, error)
	TTLSeconds() int
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Deps carries the services the handlers call.
type Deps struct {
	Catalog   catalogService
	Content   contentService
	Carts     cartRegistry
	Inquiries inquiryService
	Visitors  visitorService
	Sessions  pinger
}

// Options tune cross-cutting behaviour of the router.
type Options struct {
	CORSOrigins  []string
	CookieName   string
	CookieSecure bool
}

var errMissingDeps = errors.New("httpserver: catalog, content, carts, inquiries and visitors are required")

// buildRouter wires routes for the API.
func buildRouter(log *zap.Logger, deps Deps, opts Options) (*gin.Engine, error) {
	if deps.Catalog == nil || deps.Content == nil || deps.Carts == nil || deps.Inquiries == nil || deps.Visitors == nil {
		return nil, errMissingDeps
	}
	if log == nil {
		log = zap.NewNop()
	}
	if opts.CookieName == "" {
		opts.CookieName = "storefront_session"
	}

	router := gin.New()
	router.Use(logger.GinMiddleware(log), logger.Recovery(log))
	if len(opts.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Sessions))

	api := router.Group("/api")

	catalogH := catalogHandlers{svc: deps.Catalog}
	api.GET("/products", catalogH.listProducts)
	api.GET("/products/:handle", catalogH.getProduct)
	api.GET("/collections", catalogH.listCollections)
	api.GET("/collections/:handle", catalogH.getCollection)
	api.GET("/featured", catalogH.featured)
	api.GET("/shop", catalogH.overview)
	api.GET("/subscriptions/plans", catalogH.subscriptionPlans)

	contentH := contentHandlers{svc: deps.Content}
	content := api.Group("/content")
	content.GET("/slides", contentH.slides)
	content.GET("/gallery", contentH.gallery)
	content.GET("/testimonials", contentH.testimonials)
	content.GET("/announcement", contentH.announcement)
	content.GET("/settings", contentH.settings)
	content.GET("/faqs", contentH.faqs)
	content.GET("/blog", contentH.blog)
	content.GET("/blog/:slug", contentH.blogPost)
	content.GET("/pages/:slug", contentH.page)

	cartH := cartHandlers{carts: deps.Carts}
	carts := api.Group("/cart", sessionMiddleware(deps.Visitors, opts.CookieName, opts.CookieSecure))
	carts.GET("", cartH.get)
	carts.POST("/items", cartH.addItem)
	carts.PUT("/items/:variantId", cartH.setQuantity)
	carts.DELETE("/items/:variantId", cartH.removeItem)
	carts.DELETE("", cartH.clear)
	carts.POST("/discount", cartH.applyDiscount)
	carts.POST("/checkout", cartH.checkout)

	inquiryH := inquiryHandlers{svc: deps.Inquiries}
	api.POST("/wholesale", inquiryH.wholesale)
	api.POST("/contact", inquiryH.contact)

	return router, nil
}
