package rekuest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sumstats.dev/explorer/internal/constant"
	"sumstats.dev/explorer/internal/model/types"
	"sumstats.dev/explorer/internal/pkg/apperr"
)

func defaultRequest() types.SelectionRequest {
	return types.SelectionRequest{
		Metric:            constant.DefaultMetric,
		VariantQCPass:     true,
		SexChrNonParGroup: constant.DefaultSexChrNonParGroup,
	}
}

func TestStructAcceptsOfferedChoices(t *testing.T) {
	req := defaultRequest()
	req.CsqSet = "lof"
	req.MaxAF = "0.01"
	assert.NoError(t, Struct(req))
}

func TestStructRejectsUnofferedChoice(t *testing.T) {
	req := defaultRequest()
	req.Capture = "exome"

	err := Struct(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidReq)

	e, ok := apperr.As(err)
	require.True(t, ok)
	violations := (*e.Extras)["violations"].([]*ErrorResponse)
	require.Len(t, violations, 1)
	assert.Equal(t, "SelectionRequest.Capture", violations[0].Field)
	assert.Equal(t, "choice", violations[0].Violation)
	assert.Contains(t, violations[0].Message, "Capture")
}

func TestStructRequiresMetric(t *testing.T) {
	req := defaultRequest()
	req.Metric = ""
	assert.ErrorIs(t, Struct(req), apperr.ErrInvalidReq)
}

func TestStructRegionHasNoEmptyChoice(t *testing.T) {
	req := defaultRequest()
	req.SexChrNonParGroup = ""
	assert.Error(t, Struct(req))
}
