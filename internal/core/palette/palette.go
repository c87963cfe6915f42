// Package palette maps genetic ancestry codes to display names and colors.
//
// Only the ten codes of the current dataset are rendered; the legacy codes of
// earlier releases stay in the name and color tables for reference lookups.
package palette

import (
	"github.com/samber/lo"

	"sumstats.dev/explorer/internal/model"
	"sumstats.dev/explorer/internal/pkg/apperr"
)

var (
	categories []model.Category
	byCode     map[string]model.Category
)

func init() {
	categories = lo.Map(order[:], func(code string, _ int) model.Category {
		return model.Category{
			Code:            code,
			Name:            names[code],
			Color:           colors[code],
			AccessibleColor: accessibleColors[code],
		}
	})
	byCode = lo.KeyBy(categories, func(c model.Category) string { return c.Code })
}

// Categories returns the rendered categories in display order.
func Categories() []model.Category {
	return append([]model.Category(nil), categories...)
}

// Codes returns the rendered codes in display order.
func Codes() []string {
	return append([]string(nil), order[:]...)
}

// IsCanonical reports whether code is rendered.
func IsCanonical(code string) bool {
	_, ok := byCode[code]
	return ok
}

// Lookup returns the category of a rendered code.
func Lookup(code string) (model.Category, error) {
	c, ok := byCode[code]
	if !ok {
		return model.Category{}, apperr.ErrUnknownCategory.Msg("unknown genetic ancestry code %q", code)
	}
	return c, nil
}

func DisplayName(code string) (string, error) {
	c, err := Lookup(code)
	if err != nil {
		return "", err
	}
	return c.Name, nil
}

func Color(code string, accessible bool) (string, error) {
	c, err := Lookup(code)
	if err != nil {
		return "", err
	}
	return c.ColorFor(accessible), nil
}

// LegacyName resolves any code known to any dataset version, rendered or not.
func LegacyName(code string) (string, bool) {
	n, ok := names[code]
	return n, ok
}
