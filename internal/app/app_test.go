package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"exusiai.dev/shufflestat/internal/app/appcontext"
	"exusiai.dev/shufflestat/internal/constant"
)

func startup(t *testing.T) *fiber.App {
	t.Helper()

	t.Setenv("SHUFFLESTAT_LOG_FILE", "")
	t.Setenv("SHUFFLESTAT_SENTRY_DSN", "")
	t.Setenv("SHUFFLESTAT_DEV_MODE", "true")

	var fiberApp *fiber.App
	fxApp := fxtest.New(t,
		append(Options(appcontext.Declare(appcontext.EnvServer)), fx.Populate(&fiberApp))...,
	)
	fxApp.RequireStart()
	t.Cleanup(fxApp.RequireStop)

	return fiberApp
}

func request(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestAPIMeta(t *testing.T) {
	app := startup(t)

	t.Run("health", func(t *testing.T) {
		resp, body := request(t, app, httptest.NewRequest(http.MethodGet, "/api/_/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "ok", gjson.Get(body, "status").String())
	})

	t.Run("version", func(t *testing.T) {
		resp, body := request(t, app, httptest.NewRequest(http.MethodGet, "/api/_/bininfo", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, gjson.Get(body, "version").Exists())
	})

	t.Run("index", func(t *testing.T) {
		resp, body := request(t, app, httptest.NewRequest(http.MethodGet, "/api", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, gjson.Get(body, "endpoints").String(), "/api/v1/shuffle/chart")
	})

	t.Run("metrics", func(t *testing.T) {
		resp, body := request(t, app, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "go_goroutines")
	})

	t.Run("request id", func(t *testing.T) {
		resp, _ := request(t, app, httptest.NewRequest(http.MethodGet, "/api/_/health", nil))
		assert.NotEmpty(t, resp.Header.Get(constant.RequestIDHeader))
	})

	t.Run("not found", func(t *testing.T) {
		resp, body := request(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "UNKNOWN_ERROR", gjson.Get(body, "code").String())
	})
}
