package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pizzeria/backend/internal/application/identity"
	domainidentity "github.com/pizzeria/backend/internal/domain/identity"
	"github.com/pizzeria/backend/internal/interfaces/http/dto"
)

// UserHandler handles back-office account management
type UserHandler struct {
	BaseHandler
	userService *identity.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *identity.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List lists accounts, paginated
func (h *UserHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.userService.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(page))
}

// CreateStaff registers a staff or admin account
func (h *UserHandler) CreateStaff(c *gin.Context) {
	var req identity.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	user, err := h.userService.CreateStaff(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}

// ChangeRole reassigns an account role
func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req identity.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	user, err := h.userService.ChangeRole(c.Request.Context(), id, domainidentity.Role(req.Role))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// SetActive enables or disables an account
func (h *UserHandler) SetActive(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	user, err := h.userService.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}
