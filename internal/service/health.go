package service

import (
	"context"

	"github.com/pkg/errors"

	"sumstats.dev/explorer/internal/repo"
)

var ErrDatasetNotLoaded = errors.New("dataset not loaded")

type Health struct {
	Dataset *repo.Dataset
}

func NewHealth(dataset *repo.Dataset) *Health {
	return &Health{
		Dataset: dataset,
	}
}

// Ping reports whether the dataset is loaded. The dataset is immutable once loaded,
// so a loaded dataset stays healthy for the lifetime of the process.
func (s *Health) Ping(ctx context.Context) error {
	if s.Dataset == nil || s.Dataset.Table == nil {
		return ErrDatasetNotLoaded
	}
	return ctx.Err()
}
