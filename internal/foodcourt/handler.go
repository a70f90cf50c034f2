// File: internal/foodcourt/handler.go
package foodcourt

import (
	"errors"

	"uniconnect_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for food court handlers.
type Handler struct {
	repo   Repository
	logger *zap.Logger
}

// NewHandler creates a new food court handler.
func NewHandler(repo Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes sets up the routes for food court operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	group := router.Group("/food-courts")
	{
		group.GET("", h.listFoodCourts)
		group.POST("", authMW, h.createFoodCourt)
	}
}

func (h *Handler) listFoodCourts(c *gin.Context) {
	universityID, err := uuid.Parse(c.Query("university_id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A valid university_id query parameter is required."))
		return
	}

	courts, err := h.repo.FindByUniversity(c.Request.Context(), universityID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Food courts retrieved.", courts)
}

func (h *Handler) createFoodCourt(c *gin.Context) {
	var req CreateFoodCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	universityID, err := uuid.Parse(req.UniversityID)
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid university ID."))
		return
	}

	fc := &FoodCourt{
		UniversityID: universityID,
		Name:         req.Name,
		Location:     req.Location,
		Cuisine:      req.Cuisine,
		OpeningHours: req.OpeningHours,
		Rating:       req.Rating,
	}
	if err := h.repo.Create(c.Request.Context(), fc); err != nil {
		common.RespondWithError(c, err)
		return
	}
	h.logger.Info("Food court created", zap.String("foodCourtID", fc.ID.String()))
	common.RespondCreated(c, "Food court created.", fc)
}
