package render

import (
	"github.com/montanaflynn/stats"

	"sumstats.dev/explorer/internal/model"
	"sumstats.dev/explorer/internal/pkg/apperr"
)

// ExclusiveBox summarizes values with the exclusive quartile method: for an
// odd count the median is left out of both halves before Q1 and Q3 are taken
// as the halves' medians.
func ExclusiveBox(values []float64) (model.BoxStats, error) {
	n := len(values)
	if n == 0 {
		return model.BoxStats{}, apperr.ErrInvalidReq.Msg("cannot summarize an empty box")
	}

	data := stats.Float64Data(values)
	lowest, err := stats.Min(data)
	if err != nil {
		return model.BoxStats{}, err
	}
	highest, err := stats.Max(data)
	if err != nil {
		return model.BoxStats{}, err
	}

	if n == 1 {
		return model.BoxStats{N: 1, Min: lowest, Q1: lowest, Median: lowest, Q3: highest, Max: highest}, nil
	}

	q, err := stats.Quartile(data)
	if err != nil {
		return model.BoxStats{}, err
	}

	return model.BoxStats{
		N:      n,
		Min:    lowest,
		Q1:     q.Q1,
		Median: q.Q2,
		Q3:     q.Q3,
		Max:    highest,
	}, nil
}
