package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"sumstats.dev/explorer/internal/app/appconfig"
	"sumstats.dev/explorer/internal/constant"
	"sumstats.dev/explorer/internal/core/palette"
	"sumstats.dev/explorer/internal/core/pipeline"
	"sumstats.dev/explorer/internal/core/render"
	"sumstats.dev/explorer/internal/model"
	"sumstats.dev/explorer/internal/pkg/apperr"
	"sumstats.dev/explorer/internal/pkg/async"
	"sumstats.dev/explorer/internal/pkg/cache"
	"sumstats.dev/explorer/internal/pkg/observability"
	"sumstats.dev/explorer/internal/repo"
)

const (
	StageFilter = "filter"
	StageLong   = "long"
	StageMean   = "mean"
	StageTable  = "table"
	StagePlot   = "plot"
)

// MeanFormat renders the global mean the way it is shown in the value box.
const MeanFormat = "%.1f"

type viewKey struct {
	Selection  model.Selection `msgpack:"selection"`
	Accessible bool            `msgpack:"accessible"`
}

// Explorer runs the filter, reshape and render pipeline over the loaded dataset.
// The dataset is immutable; the only shared mutable state is the view memo.
type Explorer struct {
	dataset *repo.Dataset
	views   *cache.Memo[*model.View]
	metrics *cache.Singular[model.MetricCatalogue]
	tracer  trace.Tracer
}

func NewExplorer(dataset *repo.Dataset, conf *appconfig.Config) *Explorer {
	return &Explorer{
		dataset: dataset,
		views:   cache.NewMemo[*model.View]("view", conf.ViewCacheTTL),
		metrics: cache.NewSingular[model.MetricCatalogue]("metrics"),
		tracer:  otel.Tracer("sumstats.dev/explorer/internal/service"),
	}
}

// LoadedAt is when the dataset was loaded.
func (s *Explorer) LoadedAt() time.Time {
	return s.dataset.LoadedAt
}

func stage[T any](ctx context.Context, s *Explorer, name string, fn func() (T, error)) (T, error) {
	_, span := s.tracer.Start(ctx, "pipeline."+name)
	defer span.End()

	start := time.Now()
	v, err := fn()
	observability.PipelineStageDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if err != nil {
		code := apperr.CodeInternalError
		if e, ok := apperr.As(err); ok {
			code = e.ErrorCode
		}
		observability.PipelineErrors.WithLabelValues(code).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return v, err
}

// Rows returns the filtered wide rows of sel.
func (s *Explorer) Rows(ctx context.Context, sel model.Selection) ([]model.WideRow, error) {
	rows, err := stage(ctx, s, StageFilter, func() ([]model.WideRow, error) {
		return pipeline.Filter(s.dataset.Table, sel)
	})
	if err != nil {
		return nil, err
	}
	observability.PipelineRows.WithLabelValues(StageFilter).Observe(float64(len(rows)))
	return rows, nil
}

// Long returns the long table of sel.
func (s *Explorer) Long(ctx context.Context, sel model.Selection) ([]model.LongRow, error) {
	rows, err := s.Rows(ctx, sel)
	if err != nil {
		return nil, err
	}
	return s.long(ctx, rows)
}

func (s *Explorer) long(ctx context.Context, rows []model.WideRow) ([]model.LongRow, error) {
	return stage(ctx, s, StageLong, func() ([]model.LongRow, error) {
		return pipeline.ToLong(rows), nil
	})
}

// Table returns the summary table of sel.
func (s *Explorer) Table(ctx context.Context, sel model.Selection) ([]model.TableRow, error) {
	long, err := s.Long(ctx, sel)
	if err != nil {
		return nil, err
	}
	return s.table(ctx, long)
}

func (s *Explorer) table(ctx context.Context, long []model.LongRow) ([]model.TableRow, error) {
	return stage(ctx, s, StageTable, func() ([]model.TableRow, error) {
		return TableRows(long)
	})
}

// TableRows projects long rows onto the five displayed columns, naming genetic ancestries.
func TableRows(long []model.LongRow) ([]model.TableRow, error) {
	out := make([]model.TableRow, 0, len(long))
	for _, l := range long {
		name, err := palette.DisplayName(l.GenAnc)
		if err != nil {
			return nil, err
		}
		out = append(out, model.TableRow{
			Subset:            l.Subset,
			GenAnc:            name,
			SexChrNonParGroup: l.SexChrNonParGroup,
			Variable:          l.Variable,
			Value:             l.Value,
		})
	}
	return out, nil
}

// Mean returns the global mean of sel. A selection without, or with more than one,
// gnomad/global row fails with apperr.ErrNotFound or apperr.ErrDuplicate.
func (s *Explorer) Mean(ctx context.Context, sel model.Selection) (model.GlobalMean, error) {
	rows, err := s.Rows(ctx, sel)
	if err != nil {
		return model.GlobalMean{}, err
	}
	return s.mean(ctx, rows)
}

func (s *Explorer) mean(ctx context.Context, rows []model.WideRow) (model.GlobalMean, error) {
	return stage(ctx, s, StageMean, func() (model.GlobalMean, error) {
		v, err := pipeline.GlobalMean(rows)
		if err != nil {
			return model.GlobalMean{}, err
		}
		return model.GlobalMean{
			Value:     lo.ToPtr(v),
			Formatted: fmt.Sprintf(MeanFormat, v),
		}, nil
	})
}

// Plot returns the grouped box plot of sel.
func (s *Explorer) Plot(ctx context.Context, sel model.Selection, accessible bool) (*model.PlotSpec, error) {
	long, err := s.Long(ctx, sel)
	if err != nil {
		return nil, err
	}
	return s.plot(ctx, long, accessible)
}

func (s *Explorer) plot(ctx context.Context, long []model.LongRow, accessible bool) (*model.PlotSpec, error) {
	return stage(ctx, s, StagePlot, func() (*model.PlotSpec, error) {
		return render.Boxplot(long, accessible)
	})
}

// View runs the whole pipeline once for sel. Views are memoized per selection and
// accessibility; the boolean result reports a memo hit.
func (s *Explorer) View(ctx context.Context, sel model.Selection, accessible bool) (*model.View, bool, error) {
	ctx, span := s.tracer.Start(ctx, "explorer.view", trace.WithAttributes(
		attribute.String("metric", sel.Metric),
		attribute.Bool("accessible", accessible),
	))
	defer span.End()

	view, computed, err := s.views.MutexGetSet(viewKey{Selection: sel, Accessible: accessible}, func() (*model.View, error) {
		return s.view(ctx, sel, accessible)
	})
	if err != nil {
		return nil, false, err
	}

	result := "hit"
	if computed {
		result = "miss"
	}
	observability.ViewCacheLookups.WithLabelValues(result).Inc()
	span.SetAttributes(attribute.Bool("cached", !computed))

	return view, !computed, nil
}

func (s *Explorer) view(ctx context.Context, sel model.Selection, accessible bool) (*model.View, error) {
	rows, err := s.Rows(ctx, sel)
	if err != nil {
		return nil, err
	}

	view := &model.View{
		Selection:  sel,
		Accessible: accessible,
		RowCount:   len(rows),
	}

	// the mean reads the filtered rows directly and does not depend on the reshape
	err = async.WaitAll(
		async.Errable(func() error {
			mean, err := s.mean(ctx, rows)
			if err != nil {
				e, ok := apperr.As(err)
				if !ok || !(errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrDuplicate)) {
					return err
				}
				log.Debug().
					Str("evt.name", "explorer.view.mean_unavailable").
					Str("selection", sel.String()).
					Str("code", e.ErrorCode).
					Msg(e.Message)
				mean = model.GlobalMean{Error: &model.Problem{Code: e.ErrorCode, Message: e.Message}}
			}
			view.GlobalMean = mean
			return nil
		}),
		async.Errable(func() error {
			long, err := s.long(ctx, rows)
			if err != nil {
				return err
			}
			view.LongRowCount = len(long)

			if view.Table, err = s.table(ctx, long); err != nil {
				return err
			}
			view.Plot, err = s.plot(ctx, long, accessible)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return view, nil
}

// Metrics lists the catalogued metrics available in the dataset, in catalogue order,
// followed by any further metric the dataset carries.
func (s *Explorer) Metrics() model.MetricCatalogue {
	catalogue, _ := s.metrics.MutexGetSet(func() (model.MetricCatalogue, error) {
		available := s.dataset.Metrics()
		unavailable, extra := lo.Difference(constant.Metrics, available)
		ordered := lo.Without(constant.Metrics, unavailable...)
		return model.MetricCatalogue{
			Default:     constant.DefaultMetric,
			Metrics:     append(ordered, extra...),
			Unavailable: unavailable,
		}, nil
	}, 0)
	return catalogue
}

// Choices describes the filter panel for the loaded dataset.
func (s *Explorer) Choices() model.Choices {
	return model.Choices{
		Defaults: constant.DefaultSelection(),
		Metrics:  s.Metrics().Metrics,
		Filters:  constant.Filters,
	}
}

// Palette lists the rendered categories with the color used under accessible.
func (s *Explorer) Palette(accessible bool) []model.Category {
	return lo.Map(palette.Categories(), func(c model.Category, _ int) model.Category {
		c.Color = c.ColorFor(accessible)
		return c
	})
}
