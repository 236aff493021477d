package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type contentHandlers struct {
	svc contentService
}

func preview(c *gin.Context) bool {
	return c.Query("preview") == "true"
}

func (h contentHandlers) slides(c *gin.Context) {
	slides, err := h.svc.HeroSlides(c.Request.Context(), preview(c))
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slides": slides})
}

func (h contentHandlers) gallery(c *gin.Context) {
	items, err := h.svc.GalleryItems(c.Request.Context(), preview(c))
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h contentHandlers) testimonials(c *gin.Context) {
	items, err := h.svc.Testimonials(c.Request.Context(), preview(c))
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": items})
}

// announcement answers 204 when no bar is active.
func (h contentHandlers) announcement(c *gin.Context) {
	bar, err := h.svc.AnnouncementBar(c.Request.Context(), preview(c))
	if err != nil {
		writeError(c, err, nil)
		return
	}
	if bar == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, bar)
}

func (h contentHandlers) settings(c *gin.Context) {
	settings, err := h.svc.SiteSettings(c.Request.Context(), preview(c))
	if err != nil {
		writeError(c, err, nil)
		return
	}
	if settings == nil {
		notFound(c, "site settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h contentHandlers) faqs(c *gin.Context) {
	items, err := h.svc.FAQs(c.Request.Context(), c.Query("category"), preview(c))
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"faqs": items})
}

func (h contentHandlers) blog(c *gin.Context) {
	limit, ok := intQuery(c, "limit")
	if !ok {
		return
	}
	posts, err := h.svc.BlogPosts(c.Request.Context(), limit, preview(c))
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h contentHandlers) blogPost(c *gin.Context) {
	post, err := h.svc.BlogPostBySlug(c.Request.Context(), c.Param("slug"), preview(c))
	if err != nil {
		writeError(c, err, nil)
		return
	}
	if post == nil {
		notFound(c, "blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h contentHandlers) page(c *gin.Context) {
	page, err := h.svc.PageBySlug(c.Request.Context(), c.Param("slug"), preview(c))
	if err != nil {
		writeError(c, err, nil)
		return
	}
	if page == nil {
		notFound(c, "page")
		return
	}
	c.JSON(http.StatusOK, page)
}
