package constant

import "sumstats.dev/explorer/internal/model"

const (
	DefaultVariantQCPass     = true
	DefaultSexChrNonParGroup = "autosome_or_par"
)

var (
	SexChrNonParGroups = []string{"autosome_or_par", "x_nonpar", "y_nonpar"}
	Captures           = []string{"", "ukb_broad_union", "broad", "ukb", "ukb_broad_intersect"}
	CsqSets            = []string{"", "non-coding", "coding", "lof"}
	Csqs               = []string{
		"",
		"missense_variant",
		"synonymous_variant",
		"frameshift_variant",
		"intergenic_variant",
		"intron_variant",
		"splice_region_variant",
		"stop_gained",
		"splice_donor_variant",
		"splice_acceptor_variant",
	}
	LofteeLabels = []string{"", "HC", "LC"}
	LofteeFlags  = []string{"", "no_flags", "with_flags"}
	MaxAFs       = []string{"", "0.0001", "0.001", "0.01"}
)

// Filters lists the string filters in panel order. Names match the query parameters.
var Filters = []model.FilterChoice{
	{Name: model.ColSexChrNonParGroup, Label: "Select autosome/PAR or non-PAR", Options: SexChrNonParGroups},
	{Name: model.ColCapture, Label: "Filter by capture intervals", Options: Captures},
	{Name: model.ColCsqSet, Label: "Filter by CSQ set", Options: CsqSets},
	{Name: model.ColCsq, Label: "Filter by CSQ", Options: Csqs},
	{Name: model.ColLofteeLabel, Label: "Filter by LOFTEE label", Options: LofteeLabels},
	{Name: model.ColLofteeFlags, Label: "Filter by LOFTEE flags", Options: LofteeFlags},
	{Name: model.ColMaxAF, Label: "Filter by max AF", Options: MaxAFs},
}

// DefaultSelection is the selection a fresh session starts with.
func DefaultSelection() model.Selection {
	return model.Selection{
		Metric:            DefaultMetric,
		VariantQCPass:     DefaultVariantQCPass,
		SexChrNonParGroup: DefaultSexChrNonParGroup,
	}
}
