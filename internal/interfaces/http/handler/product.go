package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pizzeria/backend/internal/application/catalog"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
	"github.com/pizzeria/backend/internal/interfaces/http/dto"
)

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	BaseHandler
	productService *catalog.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *catalog.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Search lists products for the storefront grid, paginated
func (h *ProductHandler) Search(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	if categoryID := c.Query("category_id"); categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			h.BadRequest(c, "Invalid category ID")
			return
		}
		page, err := h.productService.ListByCategory(c.Request.Context(), id, req.ToFilter())
		if err != nil {
			h.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewPaginatedResponse(page))
		return
	}

	page, err := h.productService.Search(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(page))
}

// Featured lists the products pinned to the home page
func (h *ProductHandler) Featured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))

	products, err := h.productService.Featured(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// GetBySlug returns one product for the detail page
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	product, err := h.productService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Options returns the size and crust selectors for a product
func (h *ProductHandler) Options(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	options, err := h.productService.Options(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, options)
}

// Get returns one product by id for the back office
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Create creates a product with its variants
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Update applies a partial update to a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req catalog.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete removes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// AddVariant adds a sellable configuration to a product
func (h *ProductHandler) AddVariant(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req catalog.CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.productService.AddVariant(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// UpdateVariantPrice reprices one variant
func (h *ProductHandler) UpdateVariantPrice(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	variantID, err := uuid.Parse(c.Param("variant_id"))
	if err != nil {
		h.BadRequest(c, "Invalid variant ID")
		return
	}

	var req struct {
		Price decimal.Decimal `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.productService.UpdateVariantPrice(c.Request.Context(), id, variantID, valueobject.NewMoneyVND(req.Price))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// RemoveVariant removes a variant from a product
func (h *ProductHandler) RemoveVariant(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	variantID, err := uuid.Parse(c.Param("variant_id"))
	if err != nil {
		h.BadRequest(c, "Invalid variant ID")
		return
	}

	if err := h.productService.RemoveVariant(c.Request.Context(), id, variantID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
