// File: internal/marketplace/handler.go
package marketplace

import (
	"errors"

	"uniconnect_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for marketplace handlers.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new marketplace handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for marketplace operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	group := router.Group("/marketplace")
	{
		group.GET("/items", h.listItems)
		group.GET("/items/search", h.searchItems)
		group.GET("/items/:id", h.getItem)

		group.POST("/items", authMW, h.createItem)
		group.DELETE("/items/:id", authMW, h.deleteItem)
	}
}

func (h *Handler) createItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	callerID := common.GetUserIDFromContext(c)
	item, err := h.service.CreateItem(c.Request.Context(), callerID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Item listed.", ToItemResponse(item))
}

func (h *Handler) listItems(c *gin.Context) {
	universityID, err := uuid.Parse(c.Query("university_id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A valid university_id query parameter is required."))
		return
	}

	page, pageSize := common.GetPaginationParams(c)
	params := common.PaginationQuery{Page: page, PageSize: pageSize}

	items, pagination, err := h.service.ListAvailable(c.Request.Context(), universityID, c.Query("category"), params)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToItemResponse(&items[i]))
	}
	common.RespondPaginated(c, "Items retrieved.", responses, pagination)
}

func (h *Handler) getItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid item ID."))
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), itemID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Item retrieved.", ToItemResponse(item))
}

func (h *Handler) deleteItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid item ID."))
		return
	}

	callerID := common.GetUserIDFromContext(c)
	if err := h.service.DeleteItem(c.Request.Context(), callerID, itemID); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}

func (h *Handler) searchItems(c *gin.Context) {
	universityID, err := uuid.Parse(c.Query("university_id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A valid university_id query parameter is required."))
		return
	}

	items, err := h.service.Search(c.Request.Context(), universityID, c.Query("q"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToItemResponse(&items[i]))
	}
	common.RespondOK(c, "Search results retrieved.", responses)
}
