package v1_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"exusiai.dev/shufflestat/internal/app/appconfig"
	"exusiai.dev/shufflestat/internal/constant"
	v1 "exusiai.dev/shufflestat/internal/controller/v1"
	"exusiai.dev/shufflestat/internal/server"
	"exusiai.dev/shufflestat/internal/service"
)

const sampleResults = `{
	"success": true,
	"frequencies": [
		{"position": 1, "element": "a", "frequency": 0.25},
		{"position": 1, "element": "b", "frequency": 0.75},
		{"position": 0, "element": "a", "frequency": 0.7},
		{"position": 0, "element": "b", "frequency": 0.3}
	],
	"shuffledOnce": ["alice:1", "bob:2"]
}`

func setup(t *testing.T) *fiber.App {
	t.Helper()

	conf := &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			TrustedProxies:            []string{"127.0.0.1"},
			DevMode:                   true,
			HTTPServerShutdownTimeout: time.Second,
			BodyLimit:                 4 * 1024 * 1024,
			DefaultTopK:               5,
			ChartCacheSize:            16,
		},
	}

	var app *fiber.App
	fxApp := fxtest.New(t,
		fx.Supply(conf),
		server.Module(),
		service.Module(),
		v1.Module(),
		fx.Populate(&app),
	)
	fxApp.RequireStart()
	t.Cleanup(fxApp.RequireStop)

	return app
}

func request(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(b)
}

func TestShuffleChart(t *testing.T) {
	app := setup(t)

	t.Run("nothing ingested", func(t *testing.T) {
		resp, body := request(t, app, http.MethodGet, "/api/v1/shuffle/chart", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "EMPTY_INPUT", gjson.Get(body, "code").String())
	})

	resp, body := request(t, app, http.MethodPost, "/api/v1/shuffle/results", sampleResults)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, int64(4), gjson.Get(body, "observations").Int())
	assert.Equal(t, int64(2), gjson.Get(body, "positions").Int())
	assert.Equal(t, int64(2), gjson.Get(body, "tokens").Int())

	t.Run("defaults", func(t *testing.T) {
		resp, body := request(t, app, http.MethodGet, "/api/v1/shuffle/chart", "")
		require.Equal(t, http.StatusOK, resp.StatusCode, body)

		assert.Equal(t, int64(5), gjson.Get(body, "k").Int())
		assert.Equal(t, "percentage", gjson.Get(body, "mode").String())
		assert.Equal(t, "Position 0", gjson.Get(body, "rows.0.label").String())
		assert.Equal(t, "a", gjson.Get(body, "rows.0.values.0.element").String())
		assert.InDelta(t, 70, gjson.Get(body, "rows.0.values.0.value").Float(), 1e-9)
		assert.Equal(t, "b", gjson.Get(body, "rows.1.values.0.element").String())
		assert.Equal(t, int64(2), gjson.Get(body, "series.#").Int())
	})

	t.Run("top-1 relative", func(t *testing.T) {
		resp, body := request(t, app, http.MethodGet, "/api/v1/shuffle/chart?k=1&relative=true", "")
		require.Equal(t, http.StatusOK, resp.StatusCode, body)

		assert.Equal(t, "relative", gjson.Get(body, "mode").String())
		assert.Equal(t, int64(1), gjson.Get(body, "rows.0.values.#").Int())
		assert.Equal(t, 100.0, gjson.Get(body, "rows.0.values.0.value").Float())
		assert.Equal(t, 100.0, gjson.Get(body, "domain.upper").Float())
	})

	t.Run("absolute", func(t *testing.T) {
		resp, body := request(t, app, http.MethodGet, "/api/v1/shuffle/chart?k=1&percentage=false", "")
		require.Equal(t, http.StatusOK, resp.StatusCode, body)

		assert.Equal(t, 0.7, gjson.Get(body, "rows.0.values.0.value").Float())
		assert.Equal(t, 1.0, gjson.Get(body, "domain.upper").Float())
	})

	t.Run("invalid k", func(t *testing.T) {
		for _, q := range []string{"k=0", "k=-3", "k=100001", "k=abc", "relative=maybe"} {
			resp, body := request(t, app, http.MethodGet, "/api/v1/shuffle/chart?"+q, "")
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
			assert.Equal(t, "INVALID_REQUEST", gjson.Get(body, "code").String(), q)
		}

		_, body := request(t, app, http.MethodGet, "/api/v1/shuffle/chart?k=0", "")
		assert.Equal(t, "min", gjson.Get(body, "violations.0.violation").String())
	})
}

func TestShuffleIngestRejects(t *testing.T) {
	app := setup(t)

	resp, body := request(t, app, http.MethodPost, "/api/v1/shuffle/results", `{"success": false, "error": "no data provided"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "UPSTREAM_FAILED", gjson.Get(body, "code").String())
	assert.Contains(t, gjson.Get(body, "message").String(), "no data provided")

	resp, body = request(t, app, http.MethodPost, "/api/v1/shuffle/results", `{"frequencies": [{"position": -1, "element": "a", "frequency": 0.5}]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_REQUEST", gjson.Get(body, "code").String())

	resp, _ = request(t, app, http.MethodPost, "/api/v1/shuffle/results", `{"frequencies": [`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestShuffleBuildChart(t *testing.T) {
	app := setup(t)

	resp, body := request(t, app, http.MethodPost, "/api/v1/shuffle/chart", `{
		"frequencies": [
			{"position": 0, "element": "a", "frequency": 0.7},
			{"position": 0, "element": "b", "frequency": 0.3}
		],
		"k": 1
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, "a", gjson.Get(body, "rows.0.values.0.element").String())
	assert.InDelta(t, 70, gjson.Get(body, "rows.0.values.0.value").Float(), 1e-9)

	resp, body = request(t, app, http.MethodPost, "/api/v1/shuffle/chart", `{"frequencies": [], "k": 3}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, int64(0), gjson.Get(body, "rows.#").Int())
	assert.Equal(t, 0.0, gjson.Get(body, "domain.upper").Float())

	resp, _ = request(t, app, http.MethodPost, "/api/v1/shuffle/chart", `{"frequencies": [], "k": 0}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// stateless: nothing was ingested by the above
	resp, _ = request(t, app, http.MethodGet, "/api/v1/shuffle/chart", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPermutationCSV(t *testing.T) {
	app := setup(t)

	resp, body := request(t, app, http.MethodGet, "/api/v1/shuffle/permutation.csv", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "EMPTY_INPUT", gjson.Get(body, "code").String())

	resp, _ = request(t, app, http.MethodPost, "/api/v1/shuffle/results", sampleResults)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = request(t, app, http.MethodGet, "/api/v1/shuffle/permutation.csv", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Key,Value\nalice,1\nbob,2", body)
	assert.Equal(t, "text/csv;charset=utf-8;", resp.Header.Get(fiber.HeaderContentType))
	assert.Regexp(t, `^attachment; filename="shuffled_result_\d+\.csv"$`, resp.Header.Get(fiber.HeaderContentDisposition))
	assert.Equal(t, "0", resp.Header.Get(constant.AmbiguousTokensHeader))
}

func TestAccessPatterns(t *testing.T) {
	app := setup(t)

	resp, body := request(t, app, http.MethodGet, "/api/v1/access-patterns/summary", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, int64(0), gjson.Get(body, "totalAccesses").Int())
	assert.Equal(t, "0.00", gjson.Get(body, "ratioDisplay").String())

	resp, body = request(t, app, http.MethodPost, "/api/v1/access-patterns", `{
		"success": true,
		"data": {"total_accesses": 5, "real_accesses": 0, "dummy_accesses": 5}
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, 5.0, gjson.Get(body, "obfuscationRatio").Float())

	resp, body = request(t, app, http.MethodGet, "/api/v1/access-patterns/summary", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, int64(5), gjson.Get(body, "dummyAccesses").Int())
	assert.Equal(t, "5.00", gjson.Get(body, "ratioDisplay").String())

	resp, body = request(t, app, http.MethodPost, "/api/v1/access-patterns", `{
		"total_accesses": 2,
		"access_sequence": [{"timestamp": 1.5, "index": 0, "type": "bogus"}]
	}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "oneof", gjson.Get(body, "violations.0.violation").String())
}
