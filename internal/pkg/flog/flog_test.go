package flog

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDHandler(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(
		NewHandlerMiddleware(zerolog.New(&buf)),
		RequestIDHandler("request_id", "X-Request-ID"),
		MethodHandler("method"),
		URLHandler("url"),
	)

	var seen string
	app.Get("/ping", func(c *fiber.Ctx) error {
		id, ok := IDFromFiberCtx(c)
		require.True(t, ok)
		seen = id.String()
		DebugFrom(c).Msg("pong")
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping?x=1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, seen, resp.Header.Get("X-Request-ID"))

	line := buf.String()
	assert.Contains(t, line, `"request_id":"`+seen+`"`)
	assert.Contains(t, line, `"method":"GET"`)
	assert.Contains(t, line, `"url":"/ping?x=1"`)
	assert.Contains(t, line, `"message":"pong"`)
}

func TestRequestIDHandlerReusesInboundID(t *testing.T) {
	app := fiber.New()
	app.Use(
		NewHandlerMiddleware(zerolog.Nop()),
		RequestIDHandler("request_id", "X-Request-ID"),
	)
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	inbound := xid.New().String()
	req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", inbound)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, inbound, resp.Header.Get("X-Request-ID"))

	req = httptest.NewRequest(fiber.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "not-an-xid")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, "not-an-xid", resp.Header.Get("X-Request-ID"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
