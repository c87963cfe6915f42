package model

import "fmt"

// VariantQCPass is the variant_qc value of rows restricted to QC-passing variants.
const VariantQCPass = "pass"

// Selection is the complete filter state of one pipeline run.
//
// Empty strings are regular category values meaning "unfiltered" in the source
// table; they are not wildcards.
type Selection struct {
	Metric            string `json:"metric" msgpack:"metric"`
	VariantQCPass     bool   `json:"variantQcPass" msgpack:"variant_qc_pass"`
	SexChrNonParGroup string `json:"sexChrNonparGroup" msgpack:"sex_chr_nonpar_group"`
	Capture           string `json:"capture" msgpack:"capture"`
	CsqSet            string `json:"csqSet" msgpack:"csq_set"`
	Csq               string `json:"csq" msgpack:"csq"`
	LofteeLabel       string `json:"lofteeLabel" msgpack:"loftee_label"`
	LofteeFlags       string `json:"lofteeFlags" msgpack:"loftee_flags"`
	MaxAF             string `json:"maxAf" msgpack:"max_af"`
}

// VariantQC translates the QC switch into the literal stored in the table.
func (s Selection) VariantQC() string {
	if s.VariantQCPass {
		return VariantQCPass
	}
	return ""
}

// Matches reports whether k carries exactly the filter values of s.
// subset and gen_anc are the plotting axes and are never filtered.
func (s Selection) Matches(k RowKey) bool {
	return k.SexChrNonParGroup == s.SexChrNonParGroup &&
		k.VariantQC == s.VariantQC() &&
		k.Capture == s.Capture &&
		k.CsqSet == s.CsqSet &&
		k.Csq == s.Csq &&
		k.LofteeLabel == s.LofteeLabel &&
		k.LofteeFlags == s.LofteeFlags &&
		k.MaxAF == s.MaxAF
}

func (s Selection) String() string {
	return fmt.Sprintf("metric=%s qc=%q region=%q capture=%q csq_set=%q csq=%q loftee_label=%q loftee_flags=%q max_af=%q",
		s.Metric, s.VariantQC(), s.SexChrNonParGroup, s.Capture, s.CsqSet, s.Csq, s.LofteeLabel, s.LofteeFlags, s.MaxAF)
}
