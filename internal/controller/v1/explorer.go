package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"sumstats.dev/explorer/internal/app/appconfig"
	"sumstats.dev/explorer/internal/constant"
	"sumstats.dev/explorer/internal/model/types"
	"sumstats.dev/explorer/internal/pkg/cachectrl"
	"sumstats.dev/explorer/internal/pkg/middlewares"
	"sumstats.dev/explorer/internal/server/svr"
	"sumstats.dev/explorer/internal/service"
	"sumstats.dev/explorer/internal/util/rekuest"
)

type Explorer struct {
	fx.In

	Config          *appconfig.Config
	ExplorerService *service.Explorer
}

func RegisterExplorer(v1 *svr.V1, c Explorer) {
	accepts := middlewares.Accepts(fiber.MIMEApplicationJSON, constant.MIMEApplicationMsgpack)

	v1.Get("/view", accepts, c.GetView)
	v1.Get("/rows", accepts, c.GetRows)
	v1.Get("/long", accepts, c.GetLong)
	v1.Get("/table", accepts, c.GetTable)
	v1.Get("/mean", accepts, c.GetMean)
	v1.Get("/plot", accepts, c.GetPlot)

	v1.Get("/metrics", accepts, c.GetMetrics)
	v1.Get("/choices", accepts, c.GetChoices)
	v1.Get("/palette", accepts, c.GetPalette)
}

func (c *Explorer) optIn(ctx *fiber.Ctx) {
	cachectrl.OptIn(ctx, c.ExplorerService.LoadedAt(), c.Config.ViewCacheTTL)
}

// @Summary      Get View
// @Description  Runs the whole pipeline for one selection: row count, full dataset mean, summary table and plot.
// @Tags         Explorer
// @Produce      json,application/msgpack
// @Param        metric                query  string  false  "Metric"  default(n_non_ref)
// @Param        variant_qc_pass       query  bool    false  "Restrict to QC-passing variants"  default(true)
// @Param        sex_chr_nonpar_group  query  string  false  "Region"  default(autosome_or_par)
// @Param        accessible            query  bool    false  "Use the color-blind friendly palette"
// @Success      200  {object}  model.View
// @Failure      400  {object}  apperr.Error  "Invalid selection"
// @Failure      422  {object}  apperr.Error  "Unknown metric"
// @Router       /api/v1/view [GET]
func (c *Explorer) GetView(ctx *fiber.Ctx) error {
	req, err := parseSelection(ctx)
	if err != nil {
		return err
	}

	view, cached, err := c.ExplorerService.View(ctx.UserContext(), req.Selection(), req.Accessible)
	if err != nil {
		return err
	}

	if cached {
		ctx.Set(constant.ViewCacheHeader, "HIT")
	} else {
		ctx.Set(constant.ViewCacheHeader, "MISS")
	}
	c.optIn(ctx)
	return respond(ctx, view)
}

func (c *Explorer) GetRows(ctx *fiber.Ctx) error {
	req, err := parseSelection(ctx)
	if err != nil {
		return err
	}

	rows, err := c.ExplorerService.Rows(ctx.UserContext(), req.Selection())
	if err != nil {
		return err
	}

	c.optIn(ctx)
	return respond(ctx, rows)
}

func (c *Explorer) GetLong(ctx *fiber.Ctx) error {
	req, err := parseSelection(ctx)
	if err != nil {
		return err
	}

	long, err := c.ExplorerService.Long(ctx.UserContext(), req.Selection())
	if err != nil {
		return err
	}

	c.optIn(ctx)
	return respond(ctx, long)
}

func (c *Explorer) GetTable(ctx *fiber.Ctx) error {
	req, err := parseSelection(ctx)
	if err != nil {
		return err
	}

	rows, err := c.ExplorerService.Table(ctx.UserContext(), req.Selection())
	if err != nil {
		return err
	}

	c.optIn(ctx)
	return respond(ctx, rows)
}

// GetMean fails with 404 when the filtered set has no gnomad/global row,
// and with DUPLICATE_ROW when it has more than one.
func (c *Explorer) GetMean(ctx *fiber.Ctx) error {
	req, err := parseSelection(ctx)
	if err != nil {
		return err
	}

	mean, err := c.ExplorerService.Mean(ctx.UserContext(), req.Selection())
	if err != nil {
		return err
	}

	c.optIn(ctx)
	return respond(ctx, mean)
}

func (c *Explorer) GetPlot(ctx *fiber.Ctx) error {
	req, err := parseSelection(ctx)
	if err != nil {
		return err
	}

	plot, err := c.ExplorerService.Plot(ctx.UserContext(), req.Selection(), req.Accessible)
	if err != nil {
		return err
	}

	c.optIn(ctx)
	return respond(ctx, plot)
}

func (c *Explorer) GetMetrics(ctx *fiber.Ctx) error {
	c.optIn(ctx)
	return respond(ctx, c.ExplorerService.Metrics())
}

func (c *Explorer) GetChoices(ctx *fiber.Ctx) error {
	c.optIn(ctx)
	return respond(ctx, c.ExplorerService.Choices())
}

func (c *Explorer) GetPalette(ctx *fiber.Ctx) error {
	var req types.PaletteRequest
	if err := rekuest.ValidQuery(ctx, &req); err != nil {
		return err
	}

	c.optIn(ctx)
	return respond(ctx, c.ExplorerService.Palette(req.Accessible))
}
