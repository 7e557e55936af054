package types

// DocumentKind identifies one of the supported tax document types.
type DocumentKind string

const (
	KindPaystub DocumentKind = "paystub"
	KindW2      DocumentKind = "w2"
	Kind1120    DocumentKind = "1120"
)

// Kinds lists every supported document kind in catalog order.
var Kinds = []DocumentKind{KindPaystub, KindW2, Kind1120}

// Valid reports whether k is one of the supported kinds.
func (k DocumentKind) Valid() bool {
	switch k {
	case KindPaystub, KindW2, Kind1120:
		return true
	}
	return false
}

// KindSpec describes how records of one document kind are extracted,
// validated, and grouped.
type KindSpec struct {
	// SkillName is the exact name of the skill section that carries this
	// kind's labels. A record missing this section is rejected.
	SkillName string
	// LabelMap maps upstream label names to canonical field names.
	LabelMap map[string]string
	// Required lists canonical fields that must be populated for a record
	// to survive validation.
	Required []string
	// DateFields lists canonical fields holding full dates that go through
	// normalization. W-2 carries a bare year, so it has none.
	DateFields []string
	// KeyFields is the ordered identity tuple used for duplicate grouping.
	KeyFields []string
}

var kindSpecs = map[DocumentKind]KindSpec{
	KindPaystub: {
		SkillName: "IC - Paystubs",
		LabelMap: map[string]string{
			"Employee Name":         "employee_name",
			"Employer Name":         "employer_name",
			"Pay Period End Date":   "pay_period_end_date",
			"Pay Period Start Date": "pay_period_start_date",
			"Year to Date Earnings": "year_to_date_earnings",
		},
		Required:   []string{"employee_name", "employer_name", "pay_period_end_date", "pay_period_start_date", "year_to_date_earnings"},
		DateFields: []string{"pay_period_end_date", "pay_period_start_date"},
		KeyFields:  []string{"employee_name", "employer_name", "pay_period_start_date", "pay_period_end_date", "year_to_date_earnings"},
	},
	KindW2: {
		SkillName: "IC - W2",
		LabelMap: map[string]string{
			"Employee Name": "employee_name",
			"Employer Name": "employer_name",
			"Year":          "year",
		},
		Required:  []string{"employee_name", "employer_name", "year"},
		KeyFields: []string{"employee_name", "employer_name", "year"},
	},
	Kind1120: {
		SkillName: "2023 1120 Corporation1",
		LabelMap: map[string]string{
			"Name":                       "name",
			"1120 Year":                  "year",
			"Beginning Date Of Tax Year": "beginning_tax_year",
			"Ending Date Of Tax Year":    "ending_tax_year",
		},
		Required:   []string{"name", "year", "beginning_tax_year", "ending_tax_year"},
		DateFields: []string{"beginning_tax_year", "ending_tax_year"},
		KeyFields:  []string{"name", "year", "beginning_tax_year", "ending_tax_year"},
	},
}

// Spec returns the extraction/validation/grouping spec for the kind.
// Unknown kinds fall back to the paystub spec, matching the classifier's
// fail-open default.
func (k DocumentKind) Spec() KindSpec {
	if spec, ok := kindSpecs[k]; ok {
		return spec
	}
	return kindSpecs[KindPaystub]
}
