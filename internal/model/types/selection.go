package types

import "sumstats.dev/explorer/internal/model"

// SelectionRequest is the query string form of a selection.
type SelectionRequest struct {
	Metric            string `query:"metric" validate:"required,max=64,printascii" json:"metric" example:"n_non_ref"`
	VariantQCPass     bool   `query:"variant_qc_pass" json:"variantQcPass" example:"true"`
	SexChrNonParGroup string `query:"sex_chr_nonpar_group" validate:"choice=sex_chr_nonpar_group" json:"sexChrNonparGroup" example:"autosome_or_par"`
	Capture           string `query:"capture" validate:"choice=capture" json:"capture"`
	CsqSet            string `query:"csq_set" validate:"choice=csq_set" json:"csqSet"`
	Csq               string `query:"csq" validate:"choice=csq" json:"csq"`
	LofteeLabel       string `query:"loftee_label" validate:"choice=loftee_label" json:"lofteeLabel"`
	LofteeFlags       string `query:"loftee_flags" validate:"choice=loftee_flags" json:"lofteeFlags"`
	MaxAF             string `query:"max_af" validate:"choice=max_af" json:"maxAf"`
	Accessible        bool   `query:"accessible" json:"accessible"`
}

func (r SelectionRequest) Selection() model.Selection {
	return model.Selection{
		Metric:            r.Metric,
		VariantQCPass:     r.VariantQCPass,
		SexChrNonParGroup: r.SexChrNonParGroup,
		Capture:           r.Capture,
		CsqSet:            r.CsqSet,
		Csq:               r.Csq,
		LofteeLabel:       r.LofteeLabel,
		LofteeFlags:       r.LofteeFlags,
		MaxAF:             r.MaxAF,
	}
}

type ExportRequest struct {
	SelectionRequest
	Format string `query:"format" validate:"required,oneof=xlsx csv json" json:"format" example:"xlsx"`
}

type PaletteRequest struct {
	Accessible bool `query:"accessible" json:"accessible"`
}
