package middleware

import (
	"Ripple/internal/pkg/security"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthOptionalMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotUserID uint64
	var gotIsAdmin bool
	r := gin.New()
	r.GET("/ping", AuthOptionalMiddleware(), func(c *gin.Context) {
		gotUserID = c.GetUint64("user_id")
		gotIsAdmin = c.GetBool("is_admin")
		c.Status(http.StatusOK)
	})

	t.Run("缺失Token视为匿名", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint64(0), gotUserID)
	})

	t.Run("非法Token视为匿名", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint64(0), gotUserID)
	})

	t.Run("有效Token注入用户", func(t *testing.T) {
		token, err := security.GenerateToken(42, true)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint64(42), gotUserID)
		assert.True(t, gotIsAdmin)
	})
}

func TestCheckAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(isAdmin bool) *gin.Engine {
		r := gin.New()
		r.GET("/admin", func(c *gin.Context) {
			c.Set("is_admin", isAdmin)
		}, CheckAdmin(), func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})
		return r
	}

	t.Run("非管理员拒绝", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		assert.Contains(t, w.Body.String(), `"code":403`)
		assert.NotContains(t, w.Body.String(), "ok")
	})

	t.Run("管理员放行", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		assert.Equal(t, "ok", w.Body.String())
	})
}
