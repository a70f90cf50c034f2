// File: internal/post/handler.go
package post

import (
	"errors"

	"uniconnect_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for post handlers.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new post handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for post and comment operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	group := router.Group("/posts")
	{
		group.GET("/feed", h.getFeed)
		group.GET("/search", h.searchPosts)
		group.GET("/top-contributors", h.topContributors)
		group.GET("/:id/comments", h.getComments)

		group.POST("", authMW, h.createPost)
		group.POST("/:id/like", authMW, h.likePost)
		group.POST("/:id/comments", authMW, h.addComment)
		group.DELETE("/:id", authMW, h.deletePost)
	}

	comments := router.Group("/comments")
	{
		comments.DELETE("/:id", authMW, h.deleteComment)
	}
}

func (h *Handler) createPost(c *gin.Context) {
	var req CreatePostRequest
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
	created, err := h.service.CreatePost(c.Request.Context(), callerID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Post created.", ToPostResponse(created))
}

func (h *Handler) getFeed(c *gin.Context) {
	universityID, err := uuid.Parse(c.Query("university_id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A valid university_id query parameter is required."))
		return
	}

	page, pageSize := common.GetPaginationParams(c)
	params := common.PaginationQuery{Page: page, PageSize: pageSize}

	posts, pagination, err := h.service.GetFeed(c.Request.Context(), universityID, c.Query("type"), params)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, ToPostResponse(&posts[i]))
	}
	common.RespondPaginated(c, "Feed retrieved.", responses, pagination)
}

func (h *Handler) likePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid post ID."))
		return
	}
	if err := h.service.LikePost(c.Request.Context(), postID); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Post liked.", nil)
}

func (h *Handler) deletePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid post ID."))
		return
	}

	callerID := common.GetUserIDFromContext(c)
	if err := h.service.DeletePost(c.Request.Context(), callerID, postID); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}

func (h *Handler) addComment(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid post ID."))
		return
	}

	var req CreateCommentRequest
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
	comment, err := h.service.AddComment(c.Request.Context(), callerID, postID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Comment added.", ToCommentResponse(comment))
}

func (h *Handler) getComments(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid post ID."))
		return
	}

	comments, err := h.service.GetComments(c.Request.Context(), postID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, ToCommentResponse(&comments[i]))
	}
	common.RespondOK(c, "Comments retrieved.", responses)
}

func (h *Handler) deleteComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid comment ID."))
		return
	}

	callerID := common.GetUserIDFromContext(c)
	if err := h.service.DeleteComment(c.Request.Context(), callerID, commentID); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}

func (h *Handler) searchPosts(c *gin.Context) {
	universityID, err := uuid.Parse(c.Query("university_id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A valid university_id query parameter is required."))
		return
	}

	posts, err := h.service.Search(c.Request.Context(), universityID, c.Query("q"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, ToPostResponse(&posts[i]))
	}
	common.RespondOK(c, "Search results retrieved.", responses)
}

func (h *Handler) topContributors(c *gin.Context) {
	universityID, err := uuid.Parse(c.Query("university_id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A valid university_id query parameter is required."))
		return
	}

	stats, err := h.service.TopContributors(c.Request.Context(), universityID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Top contributors retrieved.", stats)
}
