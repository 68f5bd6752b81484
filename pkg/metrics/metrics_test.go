//go:build unit

package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskly-api/pkg/cerror"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	app := fiber.New(fiber.Config{
		ErrorHandler: cerror.Middleware,
	})
	app.Use(m.Middleware)
	app.Get("/metrics", m.Handler())
	app.Get("/entries/:entryId", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	app.Get("/forbidden", func(ctx *fiber.Ctx) error {
		return cerror.ErrorForbidden
	})

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/entries/1", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/entries/2", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/forbidden", nil))
	require.NoError(t, err)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/entries/:entryId", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/forbidden", "403")))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "taskly_http_requests_total")
}
