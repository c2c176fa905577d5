package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
	serviceMocks "portfolioapi/internal/service/mocks"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		rid := c.Locals(RequestIDLocalKey)
		return c.SendString(rid.(string))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		// Check if it's readable in handler (from response body)
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, existingID, buf.String())
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()

	// Logger usually depends on RequestID for request_id field
	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	// Verify log output
	var logData map[string]any
	err := json.Unmarshal(buf.Bytes(), &logData)
	assert.NoError(t, err)

	assert.NotEmpty(t, logData["request_id"])
	assert.Equal(t, "GET", logData["method"])
	assert.Equal(t, "/test", logData["path"])
	assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
	assert.NotNil(t, logData["latency"])
}

func TestTrackVisit(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	newApp := func(stats *serviceMocks.MockStatisticService) *fiber.App {
		app := fiber.New()
		app.Use(TrackVisit(stats, logger))
		app.Get("/api/stories", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
		app.Post("/api/messages", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })
		app.Get("/health", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
		return app
	}

	t.Run("GET under /api increments the visit counter", func(t *testing.T) {
		stats := new(serviceMocks.MockStatisticService)
		stats.On("IncrementVisit", mock.Anything).Return(&model.Statistic{TodayVisit: 1}, nil).Once()
		app := newApp(stats)

		resp, _ := app.Test(httptest.NewRequest("GET", "/api/stories", nil))

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		stats.AssertExpectations(t)
	})

	t.Run("GET to an unknown /api path still counts", func(t *testing.T) {
		stats := new(serviceMocks.MockStatisticService)
		stats.On("IncrementVisit", mock.Anything).Return(&model.Statistic{TodayVisit: 1}, nil).Once()
		app := newApp(stats)

		resp, _ := app.Test(httptest.NewRequest("GET", "/api/no-such-thing", nil))

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		stats.AssertExpectations(t)
	})

	t.Run("non-GET methods are not counted", func(t *testing.T) {
		stats := new(serviceMocks.MockStatisticService)
		app := newApp(stats)

		resp, _ := app.Test(httptest.NewRequest("POST", "/api/messages", nil))

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		stats.AssertNotCalled(t, "IncrementVisit", mock.Anything)
	})

	t.Run("paths outside /api are not counted", func(t *testing.T) {
		stats := new(serviceMocks.MockStatisticService)
		app := newApp(stats)

		resp, _ := app.Test(httptest.NewRequest("GET", "/health", nil))

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		stats.AssertNotCalled(t, "IncrementVisit", mock.Anything)
	})

	t.Run("ledger failure never fails the request", func(t *testing.T) {
		stats := new(serviceMocks.MockStatisticService)
		stats.On("IncrementVisit", mock.Anything).Return(nil, errors.New("ledger down")).Once()
		app := newApp(stats)

		resp, _ := app.Test(httptest.NewRequest("GET", "/api/stories", nil))

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		stats.AssertExpectations(t)
	})
}
