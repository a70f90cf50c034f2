// File: internal/event/handler.go
package event

import (
	"errors"

	"uniconnect_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for event handlers.
type Handler struct {
	repo   Repository
	logger *zap.Logger
}

// NewHandler creates a new event handler.
func NewHandler(repo Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes sets up the routes for event operations. Creation is
// restricted to administrators.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW, adminRoleMW gin.HandlerFunc) {
	group := router.Group("/events")
	{
		group.GET("", h.listEvents)
		group.POST("", authMW, adminRoleMW, h.createEvent)
	}
}

func (h *Handler) listEvents(c *gin.Context) {
	universityID, err := uuid.Parse(c.Query("university_id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A valid university_id query parameter is required."))
		return
	}

	events, err := h.repo.FindByUniversity(c.Request.Context(), universityID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Events retrieved.", events)
}

func (h *Handler) createEvent(c *gin.Context) {
	var req CreateEventRequest
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

	newEvent := &Event{
		UniversityID: universityID,
		CreatedBy:    common.GetUserIDFromContext(c),
		Title:        req.Title,
		Description:  req.Description,
		Venue:        req.Venue,
		Date:         req.Date,
	}
	if err := h.repo.Create(c.Request.Context(), newEvent); err != nil {
		common.RespondWithError(c, err)
		return
	}
	h.logger.Info("Event created", zap.String("eventID", newEvent.ID.String()))
	common.RespondCreated(c, "Event created.", newEvent)
}
