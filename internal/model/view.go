package model

// TableRow is one line of the summary table shown next to the plot.
type TableRow struct {
	Subset            string  `json:"subset" msgpack:"subset"`
	GenAnc            string  `json:"genAnc" msgpack:"gen_anc"`
	SexChrNonParGroup string  `json:"sexChrNonparGroup" msgpack:"sex_chr_nonpar_group"`
	Variable          string  `json:"variable" msgpack:"variable"`
	Value             float64 `json:"value" msgpack:"value"`
}

// TableColumns are the headers of TableRow, in field order.
var TableColumns = []string{ColSubset, ColGenAnc, ColSexChrNonParGroup, "variable", "value"}

// GlobalMean is the mean of the selected metric over the full unfiltered subset.
// Exactly one of Value and Error is set.
type GlobalMean struct {
	Value     *float64 `json:"value" msgpack:"value"`
	Formatted string   `json:"formatted,omitempty" msgpack:"formatted,omitempty"`
	Error     *Problem `json:"error,omitempty" msgpack:"error,omitempty"`
}

// Problem is a serializable error attached to an otherwise successful result.
type Problem struct {
	Code    string `json:"code" msgpack:"code"`
	Message string `json:"message" msgpack:"message"`
}

// View is everything the UI renders for one selection.
type View struct {
	Selection    Selection  `json:"selection" msgpack:"selection"`
	Accessible   bool       `json:"accessible" msgpack:"accessible"`
	RowCount     int        `json:"rowCount" msgpack:"row_count"`
	LongRowCount int        `json:"longRowCount" msgpack:"long_row_count"`
	GlobalMean   GlobalMean `json:"globalMean" msgpack:"global_mean"`
	Table        []TableRow `json:"table" msgpack:"table"`
	Plot         *PlotSpec  `json:"plot" msgpack:"plot"`
}
