// File: internal/pyq/handler.go
package pyq

import (
	"errors"
	"strconv"

	"uniconnect_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for paper handlers.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new paper handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for paper operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	group := router.Group("/pyq")
	{
		group.GET("/papers", h.searchPapers)
		group.POST("/papers", authMW, h.uploadPaper)
		group.DELETE("/papers/:id", authMW, h.deletePaper)
	}
}

func (h *Handler) uploadPaper(c *gin.Context) {
	var req UploadPaperRequest
	if err := c.ShouldBind(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A file upload is required."))
		return
	}

	callerID := common.GetUserIDFromContext(c)
	paper, err := h.service.UploadPaper(c.Request.Context(), callerID, req, file)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Paper uploaded.", ToPaperResponse(paper))
}

func (h *Handler) searchPapers(c *gin.Context) {
	universityID, err := uuid.Parse(c.Query("university_id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A valid university_id query parameter is required."))
		return
	}

	year := 0
	if rawYear := c.Query("year"); rawYear != "" {
		year, err = strconv.Atoi(rawYear)
		if err != nil {
			common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid year."))
			return
		}
	}

	papers, err := h.service.Search(c.Request.Context(), universityID, c.Query("subject"), year)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]PaperResponse, 0, len(papers))
	for i := range papers {
		responses = append(responses, ToPaperResponse(&papers[i]))
	}
	common.RespondOK(c, "Papers retrieved.", responses)
}

func (h *Handler) deletePaper(c *gin.Context) {
	paperID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid paper ID."))
		return
	}

	callerID := common.GetUserIDFromContext(c)
	if err := h.service.DeletePaper(c.Request.Context(), callerID, paperID); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}
