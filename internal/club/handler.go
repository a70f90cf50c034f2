// File: internal/club/handler.go
package club

import (
	"errors"

	"uniconnect_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for club handlers.
type Handler struct {
	repo   Repository
	logger *zap.Logger
}

// NewHandler creates a new club handler.
func NewHandler(repo Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes sets up the routes for club operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	group := router.Group("/clubs")
	{
		group.GET("", h.listClubs)
		group.GET("/:slug", h.getClubBySlug)
		group.POST("", authMW, h.createClub)
	}
}

func (h *Handler) listClubs(c *gin.Context) {
	universityID, err := uuid.Parse(c.Query("university_id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A valid university_id query parameter is required."))
		return
	}

	clubs, err := h.repo.FindByUniversity(c.Request.Context(), universityID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Clubs retrieved.", clubs)
}

func (h *Handler) getClubBySlug(c *gin.Context) {
	found, err := h.repo.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Club retrieved.", found)
}

func (h *Handler) createClub(c *gin.Context) {
	var req CreateClubRequest
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

	newClub := &Club{
		UniversityID: universityID,
		Name:         req.Name,
		Slug:         slug.Make(req.Name),
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
	}
	err = h.repo.Create(c.Request.Context(), newClub)
	if err != nil && errors.Is(err, common.ErrConflict) {
		// Same club name at another university: disambiguate the slug.
		newClub.ID = uuid.Nil
		newClub.Slug = slug.Make(req.Name) + "-" + uuid.New().String()[:8]
		err = h.repo.Create(c.Request.Context(), newClub)
	}
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	h.logger.Info("Club created",
		zap.String("clubID", newClub.ID.String()),
		zap.String("slug", newClub.Slug))
	common.RespondCreated(c, "Club created.", newClub)
}
