package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alok-48/GuruMitra/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	return SetupRouter(&Handlers{}, jwtManager, t.TempDir(), zap.NewNop())
}

func TestHealthCheckIsPublic(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/health-check", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/api/documents",
		"/api/pension",
		"/api/help",
		"/api/health/medicines",
		"/api/gov-updates",
		"/api/notifications",
	} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode, path)
	}
}

func TestProtectedRouteRejectsBadToken(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/notifications", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
