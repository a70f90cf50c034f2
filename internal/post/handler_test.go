// File: internal/post/handler_test.go
package post

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"uniconnect_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupPostRouter wires the handler onto a real router so tests exercise the
// registered routes, not the handler funcs directly. The auth middleware is
// replaced with a stub that injects the given caller.
func setupPostRouter(t *testing.T, callerID uuid.UUID) (*gin.Engine, *mockPostRepository, uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, repo, authorID, _ := setupPostService(t)

	stubAuth := func(c *gin.Context) {
		c.Set(common.UserIDKey, callerID)
		c.Next()
	}

	router := gin.New()
	handler := NewHandler(svc, zap.NewNop())
	handler.RegisterRoutes(router.Group("/api/v1"), stubAuth)
	return router, repo, authorID
}

func TestDeleteCommentRoute_OwnerDeletes(t *testing.T) {
	callerID := uuid.New()
	router, repo, _ := setupPostRouter(t, callerID)

	comment := &Comment{PostID: uuid.New(), UserID: callerID, Content: "see you there"}
	comment.ID = uuid.New()
	repo.comments[comment.ID] = comment

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/comments/"+comment.ID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, stillThere := repo.comments[comment.ID]
	assert.False(t, stillThere, "comment record should have been deleted")
}

func TestDeleteCommentRoute_NonOwnerForbidden(t *testing.T) {
	callerID := uuid.New()
	router, repo, authorID := setupPostRouter(t, callerID)
	require.NotEqual(t, callerID, authorID)

	comment := &Comment{PostID: uuid.New(), UserID: authorID, Content: "mine"}
	comment.ID = uuid.New()
	repo.comments[comment.ID] = comment

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/comments/"+comment.ID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	_, stillThere := repo.comments[comment.ID]
	assert.True(t, stillThere, "comment must survive a forbidden delete")
}

func TestDeleteCommentRoute_InvalidID(t *testing.T) {
	router, _, _ := setupPostRouter(t, uuid.New())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/comments/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
