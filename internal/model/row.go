package model

// Id column names of the source table, in header order.
const (
	ColSubset            = "subset"
	ColGenAnc            = "gen_anc"
	ColSexChrNonParGroup = "sex_chr_nonpar_group"
	ColVariantQC         = "variant_qc"
	ColCapture           = "capture"
	ColCsqSet            = "csq_set"
	ColCsq               = "csq"
	ColLofteeLabel       = "loftee_label"
	ColLofteeFlags       = "loftee_flags"
	ColMaxAF             = "max_af"
)

// SubsetGnomad is the subset covering the full, unfiltered dataset.
const SubsetGnomad = "gnomad"

// IDColumns lists every id column of the source table.
var IDColumns = []string{
	ColSubset,
	ColGenAnc,
	ColSexChrNonParGroup,
	ColVariantQC,
	ColCapture,
	ColCsqSet,
	ColCsq,
	ColLofteeLabel,
	ColLofteeFlags,
	ColMaxAF,
}

// RowKey holds the id columns of one source row.
type RowKey struct {
	Subset            string `json:"subset" msgpack:"subset"`
	GenAnc            string `json:"genAnc" msgpack:"gen_anc"`
	SexChrNonParGroup string `json:"sexChrNonparGroup" msgpack:"sex_chr_nonpar_group"`
	VariantQC         string `json:"variantQc" msgpack:"variant_qc"`
	Capture           string `json:"capture" msgpack:"capture"`
	CsqSet            string `json:"csqSet" msgpack:"csq_set"`
	Csq               string `json:"csq" msgpack:"csq"`
	LofteeLabel       string `json:"lofteeLabel" msgpack:"loftee_label"`
	LofteeFlags       string `json:"lofteeFlags" msgpack:"loftee_flags"`
	MaxAF             string `json:"maxAf" msgpack:"max_af"`
}

// Field returns the value of the id column named col.
func (k RowKey) Field(col string) (string, bool) {
	switch col {
	case ColSubset:
		return k.Subset, true
	case ColGenAnc:
		return k.GenAnc, true
	case ColSexChrNonParGroup:
		return k.SexChrNonParGroup, true
	case ColVariantQC:
		return k.VariantQC, true
	case ColCapture:
		return k.Capture, true
	case ColCsqSet:
		return k.CsqSet, true
	case ColCsq:
		return k.Csq, true
	case ColLofteeLabel:
		return k.LofteeLabel, true
	case ColLofteeFlags:
		return k.LofteeFlags, true
	case ColMaxAF:
		return k.MaxAF, true
	}
	return "", false
}

// Values returns the id columns in IDColumns order.
func (k RowKey) Values() []string {
	return []string{k.Subset, k.GenAnc, k.SexChrNonParGroup, k.VariantQC, k.Capture, k.CsqSet, k.Csq, k.LofteeLabel, k.LofteeFlags, k.MaxAF}
}

// Statistic suffixes of a metric column, in the order they appear per metric.
const (
	SuffixMin  = "min"
	SuffixQ25  = "q25"
	SuffixQ50  = "q50"
	SuffixQ75  = "q75"
	SuffixMax  = "max"
	SuffixMean = "mean"
)

// StatSuffixes lists the six statistics stored per metric.
var StatSuffixes = []string{SuffixMin, SuffixQ25, SuffixQ50, SuffixQ75, SuffixMax, SuffixMean}

// Canonical quantile labels.
const (
	LabelMinimum = "Minimum"
	LabelQ1      = "Q1"
	LabelMedian  = "Median"
	LabelQ3      = "Q3"
	LabelMaximum = "Maximum"
	LabelMean    = "Mean"
)

// BoxLabels are the quantiles carried into the long table. Mean is kept apart.
var BoxLabels = []string{LabelMinimum, LabelQ1, LabelMedian, LabelQ3, LabelMaximum}

// Quantiles are the six statistics of the selected metric under canonical names.
type Quantiles struct {
	Minimum float64 `json:"Minimum" msgpack:"Minimum"`
	Q1      float64 `json:"Q1" msgpack:"Q1"`
	Median  float64 `json:"Median" msgpack:"Median"`
	Q3      float64 `json:"Q3" msgpack:"Q3"`
	Maximum float64 `json:"Maximum" msgpack:"Maximum"`
	Mean    float64 `json:"Mean" msgpack:"Mean"`
}

// Box returns the five box quantiles in BoxLabels order.
func (q Quantiles) Box() [5]float64 {
	return [5]float64{q.Minimum, q.Q1, q.Median, q.Q3, q.Maximum}
}

// Set assigns the quantile named label. It reports false for an unknown label.
func (q *Quantiles) Set(label string, v float64) bool {
	switch label {
	case LabelMinimum:
		q.Minimum = v
	case LabelQ1:
		q.Q1 = v
	case LabelMedian:
		q.Median = v
	case LabelQ3:
		q.Q3 = v
	case LabelMaximum:
		q.Maximum = v
	case LabelMean:
		q.Mean = v
	default:
		return false
	}
	return true
}

// WideRow is one filtered source row with the selected metric renamed.
type WideRow struct {
	RowKey
	Quantiles
}

// LongRow is one (row, quantile) pair of the reshaped table.
type LongRow struct {
	RowKey
	Variable string  `json:"variable" msgpack:"variable"`
	Value    float64 `json:"value" msgpack:"value"`
}

