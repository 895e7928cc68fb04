package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/sigec-api/internal/interfaces/http"
	"github.com/jhoicas/sigec-api/pkg/logger"
)

func accessLogApp(buf *bytes.Buffer) *fiber.App {
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(apphttp.AccessLog(logger.New(logger.Config{Env: "production", Level: "info", Output: buf})))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })
	return app
}

func TestAccessLog_RegistraRequest(t *testing.T) {
	var buf bytes.Buffer
	app := accessLogApp(&buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "http", line["component"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/ok", line["path"])
	assert.EqualValues(t, 201, line["status"])
	assert.NotEmpty(t, line["request_id"])
}

func TestAccessLog_ErrorDelHandler(t *testing.T) {
	var buf bytes.Buffer
	app := accessLogApp(&buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "boom", line["error"])
	assert.EqualValues(t, 500, line["status"])
}
