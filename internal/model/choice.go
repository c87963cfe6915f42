package model

// FilterChoice is one selectable filter and the values offered for it.
type FilterChoice struct {
	Name    string   `json:"name" msgpack:"name"`
	Label   string   `json:"label" msgpack:"label"`
	Options []string `json:"options" msgpack:"options"`
}

// Choices describes the complete filter panel: every filter, its options and the starting selection.
type Choices struct {
	Defaults Selection      `json:"defaults" msgpack:"defaults"`
	Metrics  []string       `json:"metrics" msgpack:"metrics"`
	Filters  []FilterChoice `json:"filters" msgpack:"filters"`
}

// MetricCatalogue lists the metrics of the loaded table.
// Unavailable names catalogued metrics the table does not carry.
type MetricCatalogue struct {
	Default     string   `json:"default" msgpack:"default"`
	Metrics     []string `json:"metrics" msgpack:"metrics"`
	Unavailable []string `json:"unavailable" msgpack:"unavailable"`
}
