// File: internal/housing/handler.go
package housing

import (
	"errors"

	"uniconnect_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for housing handlers.
type Handler struct {
	repo   Repository
	logger *zap.Logger
}

// NewHandler creates a new housing handler.
func NewHandler(repo Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes sets up the routes for PG listing operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	group := router.Group("/pg-listings")
	{
		group.GET("", h.listPGs)
		group.POST("", authMW, h.createPG)
	}
}

func (h *Handler) listPGs(c *gin.Context) {
	universityID, err := uuid.Parse(c.Query("university_id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A valid university_id query parameter is required."))
		return
	}

	listings, err := h.repo.FindByUniversity(c.Request.Context(), universityID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "PG listings retrieved.", listings)
}

func (h *Handler) createPG(c *gin.Context) {
	var req CreatePGListingRequest
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

	listing := &PGListing{
		UniversityID:       universityID,
		Name:               req.Name,
		Address:            req.Address,
		MonthlyRent:        req.MonthlyRent,
		DistanceFromCampus: req.DistanceFromCampus,
		Amenities:          req.Amenities,
		ContactNumber:      req.ContactNumber,
	}
	if err := h.repo.Create(c.Request.Context(), listing); err != nil {
		common.RespondWithError(c, err)
		return
	}
	h.logger.Info("PG listing created", zap.String("listingID", listing.ID.String()))
	common.RespondCreated(c, "PG listing created.", listing)
}
