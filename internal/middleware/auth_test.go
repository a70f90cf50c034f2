// File: internal/middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"uniconnect_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func roleTestRouter(role string, allowedRoles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ZapLogger(zap.NewNop()))
	router.GET("/guarded",
		func(c *gin.Context) {
			if role != "" {
				c.Set(common.UserRoleKey, role)
			}
			c.Next()
		},
		RoleAuthMiddleware(allowedRoles...),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return router
}

func TestRoleAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		allowed    []string
		wantStatus int
	}{
		{"admin passes admin gate", common.RoleAdmin, []string{common.RoleAdmin}, http.StatusOK},
		{"student rejected by admin gate", common.RoleStudent, []string{common.RoleAdmin}, http.StatusForbidden},
		{"alumni passes multi-role gate", common.RoleAlumni, []string{common.RoleAdmin, common.RoleAlumni}, http.StatusOK},
		{"missing role rejected", "", []string{common.RoleAdmin}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := roleTestRouter(tt.role, tt.allowed...)
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// Role matching is exact, so a role that merely contains the required one
// must not slip through.
func TestRoleAuthMiddleware_NoPartialMatch(t *testing.T) {
	router := roleTestRouter("ADMINISTRATOR", common.RoleAdmin)
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestZapLogger_SetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ZapLogger(zap.NewNop()))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}
