package model

// QuartileMethodExclusive excludes the median from both halves when computing Q1 and Q3.
const QuartileMethodExclusive = "exclusive"

// BoxStats summarizes the points of one box.
type BoxStats struct {
	X      string  `json:"x" msgpack:"x"`
	N      int     `json:"n" msgpack:"n"`
	Min    float64 `json:"min" msgpack:"min"`
	Q1     float64 `json:"q1" msgpack:"q1"`
	Median float64 `json:"median" msgpack:"median"`
	Q3     float64 `json:"q3" msgpack:"q3"`
	Max    float64 `json:"max" msgpack:"max"`
}

// BoxTrace is one legend entry of a grouped box plot.
type BoxTrace struct {
	Type           string     `json:"type" msgpack:"type"`
	Code           string     `json:"code" msgpack:"code"`
	Name           string     `json:"name" msgpack:"name"`
	X              []string   `json:"x" msgpack:"x"`
	Y              []float64  `json:"y" msgpack:"y"`
	MarkerColor    string     `json:"markerColor" msgpack:"marker_color"`
	QuartileMethod string     `json:"quartileMethod" msgpack:"quartile_method"`
	Boxes          []BoxStats `json:"boxes" msgpack:"boxes"`
}

// PlotLayout carries figure-level options.
type PlotLayout struct {
	Template    string `json:"template" msgpack:"template"`
	LegendTitle string `json:"legendTitle" msgpack:"legend_title"`
	XAxisTitle  string `json:"xAxisTitle" msgpack:"xaxis_title"`
	YAxisTitle  string `json:"yAxisTitle" msgpack:"yaxis_title"`
	ShowLegend  bool   `json:"showLegend" msgpack:"show_legend"`
	BoxMode     string `json:"boxMode" msgpack:"box_mode"`
}

// PlotSpec is a renderer-agnostic grouped box plot.
type PlotSpec struct {
	Traces []BoxTrace `json:"traces" msgpack:"traces"`
	Layout PlotLayout `json:"layout" msgpack:"layout"`
}
