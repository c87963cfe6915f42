package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"sumstats.dev/explorer/internal/constant"
	"sumstats.dev/explorer/internal/model/types"
	"sumstats.dev/explorer/internal/util/rekuest"
)

// respond encodes v as msgpack when the client prefers it, as JSON otherwise.
func respond(ctx *fiber.Ctx, v any) error {
	if ctx.Accepts(fiber.MIMEApplicationJSON, constant.MIMEApplicationMsgpack) == constant.MIMEApplicationMsgpack {
		b, err := msgpack.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "failed to encode msgpack response")
		}
		ctx.Set(fiber.HeaderContentType, constant.MIMEApplicationMsgpack)
		return ctx.Send(b)
	}
	return ctx.JSON(v)
}

func defaultSelectionRequest() types.SelectionRequest {
	return types.SelectionRequest{
		Metric:            constant.DefaultMetric,
		VariantQCPass:     constant.DefaultVariantQCPass,
		SexChrNonParGroup: constant.DefaultSexChrNonParGroup,
	}
}

func parseSelection(ctx *fiber.Ctx) (types.SelectionRequest, error) {
	req := defaultSelectionRequest()
	if err := rekuest.ValidQuery(ctx, &req); err != nil {
		return types.SelectionRequest{}, err
	}
	return req, nil
}
