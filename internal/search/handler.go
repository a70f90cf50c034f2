// File: internal/search/handler.go
package search

import (
	"uniconnect_backend/internal/common"
	"uniconnect_backend/internal/marketplace"
	"uniconnect_backend/internal/post"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler serves combined search across posts and marketplace items.
type Handler struct {
	posts  *post.Service
	items  *marketplace.Service
	logger *zap.Logger
}

// NewHandler creates a new combined search handler.
func NewHandler(posts *post.Service, items *marketplace.Service, logger *zap.Logger) *Handler {
	return &Handler{posts: posts, items: items, logger: logger}
}

// RegisterRoutes sets up the combined search route.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/search", h.search)
}

// CombinedResult groups per-domain hits for one query.
type CombinedResult struct {
	Posts []post.PostResponse        `json:"posts"`
	Items []marketplace.ItemResponse `json:"marketplace_items"`
}

func (h *Handler) search(c *gin.Context) {
	universityID, err := uuid.Parse(c.Query("university_id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A valid university_id query parameter is required."))
		return
	}
	query := c.Query("q")
	if query == "" {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A q query parameter is required."))
		return
	}

	foundPosts, err := h.posts.Search(c.Request.Context(), universityID, query)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	foundItems, err := h.items.Search(c.Request.Context(), universityID, query)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	result := CombinedResult{
		Posts: make([]post.PostResponse, 0, len(foundPosts)),
		Items: make([]marketplace.ItemResponse, 0, len(foundItems)),
	}
	for i := range foundPosts {
		result.Posts = append(result.Posts, post.ToPostResponse(&foundPosts[i]))
	}
	for i := range foundItems {
		result.Items = append(result.Items, marketplace.ToItemResponse(&foundItems[i]))
	}
	common.RespondOK(c, "Search results retrieved.", result)
}
