// Package testentry provides fixtures shared by package tests.
package testentry

import (
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FixturePath returns the absolute path of the sample summary statistics table.
//
// The fixture holds two metrics (n_non_ref, r_ti_tv). Under the default
// selection (QC pass, autosome_or_par, no other filter) it yields four rows
// and a gnomad/global n_non_ref mean of 42.3.
func FixturePath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata", "sumstats.csv")
}

// QuietLogger routes the global logger into the test log.
func QuietLogger(t zerolog.TestingLog) {
	log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))
}
