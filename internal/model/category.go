package model

// Category is one rendered genetic ancestry group.
type Category struct {
	Code            string `json:"code" msgpack:"code"`
	Name            string `json:"name" msgpack:"name"`
	Color           string `json:"color" msgpack:"color"`
	AccessibleColor string `json:"accessibleColor" msgpack:"accessible_color"`
}

// ColorFor returns the standard or the accessible color of c.
func (c Category) ColorFor(accessible bool) string {
	if accessible {
		return c.AccessibleColor
	}
	return c.Color
}
