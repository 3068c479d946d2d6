package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asadc0de/husnainatelier/internal/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return New(Deps{
		Cfg: config.Config{
			SessionSecret: "test-session-secret",
			CookieSecret:  "test-cookie-secret",
		},
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

// A panic anywhere under the middleware chain must surface as a 500 with
// the JSON error envelope, never as an empty 200.
func TestPanicYieldsErrorEnvelope(t *testing.T) {
	r := newTestRouter(t)
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
	assert.Contains(t, w.Body.String(), `"request_id"`)
	assert.NotContains(t, w.Body.String(), "kaboom", "internal detail stays in the log")
}

func TestAdminRoutesAreGated(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/products", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
