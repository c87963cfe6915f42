package constant

// DefaultMetric is selected when a request names no metric.
const DefaultMetric = "n_non_ref"

// Metrics is the catalogue of per-sample metrics published in the summary statistics release,
// in the order they are offered for selection. The loaded table decides which of them are
// actually available.
var Metrics = []string{
	"n_non_ref",
	"n_non_ref_alleles",
	"n_het",
	"n_hom_var",
	"n_hemi_var",
	"n_snp",
	"n_indel",
	"n_insertion",
	"n_deletion",
	"n_transition",
	"n_transversion",
	"n_singleton",
	"n_singleton_ti",
	"n_singleton_tv",
	"n_over_gq_60",
	"n_over_dp_20",
	"n_over_dp_30",
	"r_ti_tv",
	"r_ti_tv_singleton",
	"r_het_hom_var",
	"r_insertion_deletion",
	"n_high_ab_het_ref",
}
