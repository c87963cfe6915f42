// Package flog provides a set of fiber.Ctx helpers for zerolog.
package flog

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FromFiberCtx returns the request-scoped logger.
func FromFiberCtx(ctx *fiber.Ctx) *zerolog.Logger {
	return log.Ctx(ctx.UserContext())
}

// NewHandlerMiddleware gives every request its own copy of log.
func NewHandlerMiddleware(log zerolog.Logger) func(*fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		// UpdateContext mutates the logger, so each request needs its own copy
		l := log.With().Logger()
		ctx.SetUserContext(l.WithContext(ctx.UserContext()))
		return ctx.Next()
	}
}

// fieldHandler adds the value extracted by fn as a field to the context's logger.
func fieldHandler(fieldKey string, fn func(ctx *fiber.Ctx) string) func(ctx *fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		log := zerolog.Ctx(ctx.UserContext())
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str(fieldKey, fn(ctx))
		})
		return ctx.Next()
	}
}

// URLHandler logs the original request URL under fieldKey.
func URLHandler(fieldKey string) func(ctx *fiber.Ctx) error {
	return fieldHandler(fieldKey, func(ctx *fiber.Ctx) string {
		return ctx.OriginalURL()
	})
}

func MethodHandler(fieldKey string) func(ctx *fiber.Ctx) error {
	return fieldHandler(fieldKey, func(ctx *fiber.Ctx) string {
		return ctx.Method()
	})
}

// RemoteAddrHandler logs the client IP under fieldKey. Behind a trusted proxy this is
// the forwarded address.
func RemoteAddrHandler(fieldKey string) func(ctx *fiber.Ctx) error {
	return fieldHandler(fieldKey, func(ctx *fiber.Ctx) string {
		return ctx.IP()
	})
}

func UserAgentHandler(fieldKey string) func(ctx *fiber.Ctx) error {
	return fieldHandler(fieldKey, func(ctx *fiber.Ctx) string {
		return ctx.Get(fiber.HeaderUserAgent)
	})
}

type requestIDKey struct{}

// IDFromFiberCtx returns the request id assigned by RequestIDHandler.
func IDFromFiberCtx(ctx *fiber.Ctx) (xid.ID, bool) {
	if ctx == nil {
		return xid.NilID(), false
	}
	return IDFromCtx(ctx.UserContext())
}

func IDFromCtx(ctx context.Context) (xid.ID, bool) {
	id, ok := ctx.Value(requestIDKey{}).(xid.ID)
	return id, ok
}

func CtxWithID(ctx context.Context, id xid.ID) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDHandler assigns every request an xid, logged under fieldKey and echoed in
// headerName. A well-formed xid sent by the client in headerName is reused so that
// retries of one logical request share an id.
func RequestIDHandler(fieldKey, headerName string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, ok := IDFromFiberCtx(ctx)
		if !ok {
			if inbound, err := xid.FromString(ctx.Get(headerName)); err == nil {
				id = inbound
			} else {
				id = xid.New()
			}
			ctx.SetUserContext(CtxWithID(ctx.UserContext(), id))
		}

		FromFiberCtx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str(fieldKey, id.String())
		})
		ctx.Set(headerName, id.String())
		return ctx.Next()
	}
}

// AccessHandler calls f once the rest of the chain has run, with the time it took.
func AccessHandler(f func(ctx *fiber.Ctx, duration time.Duration)) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		f(ctx, time.Since(start))
		return err
	}
}

func DebugFrom(ctx *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(ctx).Debug()
}

func WarnFrom(ctx *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(ctx).Warn()
}
