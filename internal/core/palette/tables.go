package palette

// GlobalCode is the category spanning every genetic ancestry.
const GlobalCode = "global"

// order is the display order of the rendered categories.
var order = [...]string{
	"global",
	"afr",
	"amr",
	"asj",
	"eas",
	"fin",
	"mid",
	"nfe",
	"sas",
	"remaining",
}

// names covers every code seen across dataset versions; mde predates mid.
var names = map[string]string{
	"afr":             "African/African-American",
	"ami":             "Amish",
	"amr":             "Admixed American",
	"asj":             "Ashkenazi Jewish",
	"eas":             "East Asian",
	"eur":             "European",
	"fin":             "Finnish",
	"mde":             "Middle Eastern",
	"mid":             "Middle Eastern",
	"nfe":             "Non-Finnish European",
	"oth":             "Other",
	"remaining":       "Remaining individuals",
	"sas":             "South Asian",
	"uniform":         "Uniform",
	"sas_non_consang": "South Asian (F < 0.05)",
	"consanguineous":  "South Asian (F > 0.05)",
	"exac":            "ExAC",
	"bgr":             "Bulgarian (Eastern European)",
	"est":             "Estonian",
	"gbr":             "British",
	"nwe":             "North-Western European",
	"seu":             "Southern European",
	"swe":             "Swedish",
	"kor":             "Korean",
	"sgp":             "Singaporean",
	"jpn":             "Japanese",
	"oea":             "Other East Asian",
	"oeu":             "Other European",
	"onf":             "Other Non-Finnish European",
	"unk":             "Unknown",
	"global":          "All",
}

var colors = map[string]string{
	"afr":             "#941494",
	"ami":             "#FFC0CB",
	"amr":             "#ED1E24",
	"asj":             "#FF7F50",
	"eas":             "#108C44",
	"eur":             "#6AA5CD",
	"fin":             "#002F6C",
	"mde":             "#33CC33",
	"nfe":             "#6AA5CD",
	"oth":             "#ABB9B9",
	"sas":             "#FF9912",
	"uniform":         "pink",
	"consanguineous":  "pink",
	"sas_non_consang": "orange",
	"exac":            "gray",
	"bgr":             "#66C2A5",
	"est":             "black",
	"gbr":             "#C60C30",
	"nwe":             "#C60C30",
	"seu":             "#3CA021",
	"swe":             "purple",
	"kor":             "#4891D9",
	"sgp":             "darkred",
	"jpn":             "#BC002D",
	"oea":             "#108C44",
	"oeu":             "#6AA5CD",
	"onf":             "#6AA5CD",
	"unk":             "#ABB9B9",
	"remaining":       "#ABB9B9",
	"":                "#ABB9B9",
	"mid":             "#33CC33",
	"global":          "#000000",
}

// accessibleColors is Paul Tol's muted palette extended with white, black and #004488.
// It is still not distinguishable under monochromacy.
var accessibleColors = map[string]string{
	"afr":       "#CC6677",
	"ami":       "#332288",
	"amr":       "#DDCC77",
	"asj":       "#117733",
	"eas":       "#88CCEE",
	"eur":       "#882255",
	"fin":       "#44AA99",
	"nfe":       "#999933",
	"sas":       "#AA4499",
	"remaining": "white",
	"mid":       "#004488",
	"global":    "#000000",
}
