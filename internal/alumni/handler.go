// File: internal/alumni/handler.go
package alumni

import (
	"errors"

	"uniconnect_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for alumni handlers.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new alumni handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for alumni operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	group := router.Group("/alumni")
	{
		group.GET("/profiles", h.listProfiles)
		group.GET("/profiles/:userId", h.getProfile)
		group.POST("/profiles", authMW, h.createProfile)
	}
}

func (h *Handler) createProfile(c *gin.Context) {
	var req CreateProfileRequest
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
	profile, err := h.service.CreateProfile(c.Request.Context(), callerID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Alumni profile created.", ToProfileResponse(profile))
}

func (h *Handler) getProfile(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid user ID."))
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Alumni profile retrieved.", ToProfileResponse(profile))
}

func (h *Handler) listProfiles(c *gin.Context) {
	universityID, err := uuid.Parse(c.Query("university_id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A valid university_id query parameter is required."))
		return
	}

	profiles, err := h.service.ListByUniversity(c.Request.Context(), universityID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, ToProfileResponse(&profiles[i]))
	}
	common.RespondOK(c, "Alumni profiles retrieved.", responses)
}
