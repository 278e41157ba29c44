package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/application/content"
	"github.com/pizzeria/backend/internal/interfaces/http/dto"
	"github.com/pizzeria/backend/internal/interfaces/http/middleware"
)

// ContentHandler handles banners, news and FAQ HTTP requests
type ContentHandler struct {
	BaseHandler
	bannerService *content.BannerService
	newsService   *content.NewsService
	faqService    *content.FAQService
}

// NewContentHandler creates a new content handler
func NewContentHandler(bannerService *content.BannerService, newsService *content.NewsService, faqService *content.FAQService) *ContentHandler {
	return &ContentHandler{
		bannerService: bannerService,
		newsService:   newsService,
		faqService:    faqService,
	}
}

// ListActiveBanners lists the home-page carousel slides
func (h *ContentHandler) ListActiveBanners(c *gin.Context) {
	banners, err := h.bannerService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, banners)
}

// ListAllBanners lists slides for the back office
func (h *ContentHandler) ListAllBanners(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	banners, err := h.bannerService.ListAll(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, banners)
}

// CreateBanner adds a carousel slide
func (h *ContentHandler) CreateBanner(c *gin.Context) {
	var req content.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	banner, err := h.bannerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, banner)
}

// DeactivateBanner pulls a slide from the carousel
func (h *ContentHandler) DeactivateBanner(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid banner ID")
		return
	}

	if err := h.bannerService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Banner deactivated"})
}

// DeleteBanner removes a slide
func (h *ContentHandler) DeleteBanner(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid banner ID")
		return
	}

	if err := h.bannerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListPublishedNews lists published articles for the storefront
func (h *ContentHandler) ListPublishedNews(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.newsService.ListPublished(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(page))
}

// GetNewsBySlug returns one published article
func (h *ContentHandler) GetNewsBySlug(c *gin.Context) {
	article, err := h.newsService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, article)
}

// ListAllNews lists every article for the back office
func (h *ContentHandler) ListAllNews(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	articles, err := h.newsService.ListAll(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, articles)
}

// CreateNews drafts an article
func (h *ContentHandler) CreateNews(c *gin.Context) {
	var req content.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	article, err := h.newsService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, article)
}

// PublishNews makes an article visible
func (h *ContentHandler) PublishNews(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid article ID")
		return
	}

	article, err := h.newsService.Publish(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, article)
}

// UnpublishNews pulls an article back to draft
func (h *ContentHandler) UnpublishNews(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid article ID")
		return
	}

	article, err := h.newsService.Unpublish(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, article)
}

// DeleteNews removes an article
func (h *ContentHandler) DeleteNews(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid article ID")
		return
	}

	if err := h.newsService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListPublishedFAQ lists the public FAQ page entries
func (h *ContentHandler) ListPublishedFAQ(c *gin.Context) {
	faqs, err := h.faqService.ListPublished(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, faqs)
}

// SubmitQuestion records a question from a visitor, anonymous or not
func (h *ContentHandler) SubmitQuestion(c *gin.Context) {
	var req content.SubmitQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	var customerID *uuid.UUID
	if id, ok := middleware.GetJWTUserUUID(c); ok {
		customerID = &id
	}

	faq, err := h.faqService.Submit(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, faq)
}

// ListUnansweredFAQ lists the pending question queue
func (h *ContentHandler) ListUnansweredFAQ(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.faqService.ListUnanswered(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(page))
}

// ListAllFAQ lists every question for the back office
func (h *ContentHandler) ListAllFAQ(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	faqs, err := h.faqService.ListAll(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, faqs)
}

// AnswerQuestion records the staff answer
func (h *ContentHandler) AnswerQuestion(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid question ID")
		return
	}

	var req content.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	faq, err := h.faqService.Answer(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, faq)
}

// SetQuestionPublished toggles a question on the public FAQ page
func (h *ContentHandler) SetQuestionPublished(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid question ID")
		return
	}

	var req struct {
		Published *bool `json:"published" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	faq, err := h.faqService.SetPublished(c.Request.Context(), id, *req.Published)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, faq)
}

// DeleteQuestion removes a question
func (h *ContentHandler) DeleteQuestion(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid question ID")
		return
	}

	if err := h.faqService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
