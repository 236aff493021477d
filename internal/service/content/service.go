package content

import (
	"context"
	"strings"

	"coffee-storefront/internal/contentful"
	"coffee-storefront/internal/domain"
)

const defaultBlogLimit = 10

type entryReader interface {
	Entries(ctx context.Context, q contentful.Query) (*contentful.EntryCollection, error)
	First(ctx context.Context, q contentful.Query) (*contentful.Entry, error)
}

// Service maps CMS entries onto editorial types. preview selects draft
// content.
type Service struct {
	cms entryReader
}

func New(cms entryReader) *Service {
	return &Service{cms: cms}
}

func (s *Service) list(ctx context.Context, q contentful.Query) ([]contentful.Entry, error) {
	res, err := s.cms.Entries(ctx, q)
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}

func (s *Service) HeroSlides(ctx context.Context, preview bool) ([]domain.HeroSlide, error) {
	entries, err := s.list(ctx, contentful.Query{ContentType: "heroSlide", Order: "fields.order", Preview: preview})
	if err != nil {
		return nil, err
	}
	out := make([]domain.HeroSlide, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.HeroSlide{
			ID:              e.ID(),
			Title:           e.String("title"),
			Subtitle:        e.String("subtitle"),
			CTAText:         e.String("ctaText"),
			CTALink:         e.String("ctaLink"),
			BackgroundImage: e.AssetURL("backgroundImage"),
			BackgroundColor: e.String("backgroundColor"),
			Order:           e.Int("order"),
			ShopifyHandle:   e.String("shopifyHandle"),
			LinkType:        e.String("linkType"),
		})
	}
	return out, nil
}

func (s *Service) GalleryItems(ctx context.Context, preview bool) ([]domain.GalleryItem, error) {
	entries, err := s.list(ctx, contentful.Query{ContentType: "galleryItem", Order: "-fields.featured,-sys.createdAt", Preview: preview})
	if err != nil {
		return nil, err
	}
	out := make([]domain.GalleryItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.GalleryItem{
			ID:              e.ID(),
			Title:           e.String("title"),
			Description:     e.String("description"),
			Image:           e.AssetURL("image"),
			Type:            e.String("type"),
			Category:        e.String("category"),
			Quote:           e.String("quote"),
			Author:          e.String("author"),
			BackgroundColor: e.String("backgroundColor"),
			Featured:        e.Bool("featured"),
			Link:            e.String("link"),
		})
	}
	return out, nil
}

// PageBySlug returns nil when no page has the slug.
func (s *Service) PageBySlug(ctx context.Context, slug string, preview bool) (*domain.Page, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, nil
	}
	e, err := s.cms.First(ctx, contentful.Query{ContentType: "page", Fields: map[string]string{"slug": slug}, Preview: preview})
	if err != nil || e == nil {
		return nil, err
	}
	return &domain.Page{
		ID:              e.ID(),
		Title:           e.String("title"),
		Slug:            e.String("slug"),
		Content:         e.Rich("content"),
		MetaTitle:       e.String("metaTitle"),
		MetaDescription: e.String("metaDescription"),
		HeroImage:       e.AssetURL("heroImage"),
	}, nil
}

func (s *Service) BlogPosts(ctx context.Context, limit int, preview bool) ([]domain.BlogPost, error) {
	if limit <= 0 {
		limit = defaultBlogLimit
	}
	entries, err := s.list(ctx, contentful.Query{ContentType: "blogPost", Order: "-fields.publishDate", Limit: limit, Preview: preview})
	if err != nil {
		return nil, err
	}
	out := make([]domain.BlogPost, 0, len(entries))
	for _, e := range entries {
		out = append(out, blogPost(e))
	}
	return out, nil
}

// BlogPostBySlug returns nil when no post has the slug.
func (s *Service) BlogPostBySlug(ctx context.Context, slug string, preview bool) (*domain.BlogPost, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, nil
	}
	e, err := s.cms.First(ctx, contentful.Query{ContentType: "blogPost", Fields: map[string]string{"slug": slug}, Preview: preview})
	if err != nil || e == nil {
		return nil, err
	}
	post := blogPost(*e)
	return &post, nil
}

func blogPost(e contentful.Entry) domain.BlogPost {
	post := domain.BlogPost{
		ID:            e.ID(),
		Title:         e.String("title"),
		Slug:          e.String("slug"),
		Excerpt:       e.String("excerpt"),
		Content:       e.Rich("content"),
		Author:        e.String("author"),
		PublishDate:   e.Time("publishDate"),
		FeaturedImage: e.AssetURL("featuredImage"),
		Tags:          e.Strings("tags"),
	}
	if related := e.Strings("relatedProducts"); len(related) > 0 {
		post.RelatedProducts = related
	}
	return post
}

func (s *Service) Testimonials(ctx context.Context, preview bool) ([]domain.Testimonial, error) {
	entries, err := s.list(ctx, contentful.Query{ContentType: "testimonial", Order: "-fields.featured,-sys.createdAt", Preview: preview})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Testimonial, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.Testimonial{
			ID:            e.ID(),
			Name:          e.String("name"),
			Content:       e.String("content"),
			Rating:        e.Int("rating"),
			Location:      e.String("location"),
			ProductHandle: e.String("productHandle"),
			Featured:      e.Bool("featured"),
		})
	}
	return out, nil
}

// AnnouncementBar returns the active bar, or nil when none is active.
func (s *Service) AnnouncementBar(ctx context.Context, preview bool) (*domain.AnnouncementBar, error) {
	e, err := s.cms.First(ctx, contentful.Query{ContentType: "announcementBar", Fields: map[string]string{"active": "true"}, Preview: preview})
	if err != nil || e == nil {
		return nil, err
	}
	return &domain.AnnouncementBar{
		ID:              e.ID(),
		Text:            e.String("text"),
		Link:            e.String("link"),
		LinkText:        e.String("linkText"),
		Active:          e.Bool("active"),
		BackgroundColor: e.String("backgroundColor"),
		TextColor:       e.String("textColor"),
		Dismissible:     e.Bool("dismissible"),
	}, nil
}

// SiteSettings returns nil when the space has no settings entry.
func (s *Service) SiteSettings(ctx context.Context, preview bool) (*domain.SiteSettings, error) {
	e, err := s.cms.First(ctx, contentful.Query{ContentType: "siteSettings", Preview: preview})
	if err != nil || e == nil {
		return nil, err
	}
	settings := &domain.SiteSettings{
		ID:                    e.ID(),
		SiteName:              e.String("siteName"),
		Tagline:               e.String("tagline"),
		HeroTitle:             e.String("heroTitle"),
		HeroSubtitle:          e.String("heroSubtitle"),
		FreeShippingThreshold: e.Float("freeShippingThreshold"),
		SubscriptionDiscount:  e.Float("subscriptionDiscount"),
		FooterContent:         e.Rich("footerContent"),
	}
	e.Object("socialLinks", &settings.SocialLinks)
	e.Object("contactInfo", &settings.ContactInfo)
	return settings, nil
}

// FAQs lists questions in display order, optionally narrowed to a category.
func (s *Service) FAQs(ctx context.Context, category string, preview bool) ([]domain.FAQ, error) {
	q := contentful.Query{ContentType: "faq", Order: "fields.order", Preview: preview}
	if category = strings.TrimSpace(category); category != "" {
		q.Fields = map[string]string{"category": category}
	}
	entries, err := s.list(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]domain.FAQ, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.FAQ{
			ID:       e.ID(),
			Question: e.String("question"),
			Answer:   e.Rich("answer"),
			Category: e.String("category"),
			Order:    e.Int("order"),
		})
	}
	return out, nil
}
