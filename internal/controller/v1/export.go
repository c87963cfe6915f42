package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"sumstats.dev/explorer/internal/model"
	"sumstats.dev/explorer/internal/model/types"
	"sumstats.dev/explorer/internal/pkg/cachectrl"
	"sumstats.dev/explorer/internal/server/svr"
	"sumstats.dev/explorer/internal/service"
	"sumstats.dev/explorer/internal/util/rekuest"
)

type Export struct {
	fx.In

	ExplorerService *service.Explorer
	ExportService   *service.Export
}

func RegisterExport(v1 *svr.V1, c Export) {
	v1.Get("/export", c.GetExport)
}

// @Summary      Export Summary Table
// @Tags         Export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,text/csv,json
// @Param        format  query  string  true  "xlsx, csv or json"
// @Success      200
// @Failure      400  {object}  apperr.Error  "Invalid selection or format"
// @Router       /api/v1/export [GET]
func (c *Export) GetExport(ctx *fiber.Ctx) error {
	req := types.ExportRequest{SelectionRequest: defaultSelectionRequest()}
	if err := rekuest.ValidQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.ExportService.Export(ctx.UserContext(), req.Selection(), model.ExportFormat(req.Format))
	if err != nil {
		return err
	}

	// exports are downloads: let the browser revalidate against the table load time
	cachectrl.OptOut(ctx)
	ctx.Response().Header.SetLastModified(c.ExplorerService.LoadedAt())
	ctx.Set(fiber.HeaderContentType, res.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, service.ContentDisposition(res))
	return ctx.Send(res.Body)
}
