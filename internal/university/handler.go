// File: internal/university/handler.go
package university

import (
	"errors"

	"uniconnect_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for university handlers.
type Handler struct {
	repo   Repository
	logger *zap.Logger
}

// NewHandler creates a new university handler.
func NewHandler(repo Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes sets up the routes for university operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW, adminRoleMW gin.HandlerFunc) {
	group := router.Group("/universities")
	{
		group.GET("", h.listUniversities)
		group.GET("/:id", h.getUniversity)
		group.POST("", authMW, adminRoleMW, h.createUniversity)
	}
}

func (h *Handler) listUniversities(c *gin.Context) {
	unis, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Universities retrieved.", unis)
}

func (h *Handler) getUniversity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid university ID."))
		return
	}

	uni, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "University retrieved.", uni)
}

func (h *Handler) createUniversity(c *gin.Context) {
	var req CreateUniversityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	uni := &University{Name: req.Name, City: req.City}
	if err := h.repo.Create(c.Request.Context(), uni); err != nil {
		common.RespondWithError(c, err)
		return
	}
	h.logger.Info("University created", zap.String("universityID", uni.ID.String()))
	common.RespondCreated(c, "University created.", uni)
}
