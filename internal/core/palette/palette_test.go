package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sumstats.dev/explorer/internal/pkg/apperr"
)

func TestMiddleEastern(t *testing.T) {
	name, err := DisplayName("mid")
	require.NoError(t, err)
	assert.Equal(t, "Middle Eastern", name)

	std, err := Color("mid", false)
	require.NoError(t, err)
	acc, err := Color("mid", true)
	require.NoError(t, err)

	assert.Equal(t, "#33CC33", std)
	assert.Equal(t, "#004488", acc)
}

func TestDisplayOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"global", "afr", "amr", "asj", "eas", "fin", "mid", "nfe", "sas", "remaining"},
		Codes())

	cats := Categories()
	require.Len(t, cats, 10)
	assert.Equal(t, "All", cats[0].Name)
	assert.Equal(t, "Remaining individuals", cats[9].Name)
	for _, c := range cats {
		assert.NotEmpty(t, c.Name, c.Code)
		assert.NotEmpty(t, c.Color, c.Code)
		assert.NotEmpty(t, c.AccessibleColor, c.Code)
	}
}

func TestCategoriesIsACopy(t *testing.T) {
	cats := Categories()
	cats[0].Name = "mutated"

	name, err := DisplayName("global")
	require.NoError(t, err)
	assert.Equal(t, "All", name)
}

func TestUnknownCategory(t *testing.T) {
	for _, code := range []string{"ami", "mde", "", "GLOBAL", "xyz"} {
		_, err := DisplayName(code)
		assert.ErrorIs(t, err, apperr.ErrUnknownCategory, code)

		_, err = Color(code, true)
		assert.ErrorIs(t, err, apperr.ErrUnknownCategory, code)
	}
}

func TestLegacyName(t *testing.T) {
	name, ok := LegacyName("mde")
	assert.True(t, ok)
	assert.Equal(t, "Middle Eastern", name)
	assert.False(t, IsCanonical("mde"))

	_, ok = LegacyName("xyz")
	assert.False(t, ok)
}
