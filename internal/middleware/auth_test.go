package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func adminRouter(role string, setRole bool) *gin.Engine {
	r := gin.New()
	r.POST("/admin-only",
		func(c *gin.Context) {
			if setRole {
				c.Set(AuthRoleKey, role)
			}
		},
		AdminMiddleware(),
		func(c *gin.Context) {
			c.Status(http.StatusOK)
		},
	)
	return r
}

func TestAdminMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		setRole  bool
		wantCode int
	}{
		{name: "admin passes", role: "admin", setRole: true, wantCode: http.StatusOK},
		{name: "admin role is case insensitive", role: "Admin", setRole: true, wantCode: http.StatusOK},
		{name: "scorer is forbidden", role: "scorer", setRole: true, wantCode: http.StatusForbidden},
		{name: "missing role is unauthorized", setRole: false, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
			adminRouter(tt.role, tt.setRole).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
