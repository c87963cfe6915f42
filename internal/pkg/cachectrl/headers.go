package cachectrl

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// OptIn marks a response as publicly cacheable for maxAge. Responses derived from the
// source table carry the table's load time as Last-Modified.
func OptIn(ctx *fiber.Ctx, lastModified time.Time, maxAge time.Duration) {
	if maxAge <= 0 {
		OptOut(ctx)
		return
	}
	ctx.Set(fiber.HeaderCacheControl, "public, max-age="+strconv.Itoa(int(maxAge.Seconds())))
	ctx.Set(fiber.HeaderExpires, time.Now().Add(maxAge).UTC().Format(time.RFC1123))

	ctx.Response().Header.SetLastModified(lastModified)
}

func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}
