package paystub

import (
	"strings"

	"mbaxter/ledgerize/internal/models"
)

// Candidate source keys per canonical field, in priority order: the
// snake_case AI/OCR key first, then the camelCase nested key, then flat
// legacy keys. The first non-missing value wins. A dotted candidate is a
// path into a nested object.
var (
	payPeriodKeys = []string{"pay_period", "payPeriod"}
	grossKeys     = []string{"gross_amount", "grossAmount", "gross_pay"}
	federalKeys   = []string{"federal_tax_amount", "federalTax", "federal_tax"}
	stateKeys     = []string{"state_tax_amount", "stateTax", "state_tax"}
	localKeys     = []string{"local_tax_amount", "localTax", "local_tax"}
	medicareKeys  = []string{"medicare_amount", "medicare"}
	socialKeys    = []string{"social_security_amount", "socialSecurity", "social_security"}
	netKeys       = []string{"net_amount", "netAmount", "net_pay"}
	payDateKeys   = []string{"pay_date", "payDate"}
	sourceKeys    = []string{"source_system", "source"}

	emp401kKeys      = []string{"employee_401k_contribution", "preTaxDeductions.employee401k", "employee401k", "employee_401k"}
	match401kKeys    = []string{"employer_401k_match", "preTaxDeductions.employer401kMatch", "employer401kMatch"}
	empHSAKeys       = []string{"employee_hsa_contribution", "preTaxDeductions.employeeHSA", "employeeHSA", "hsa_contribution"}
	matchHSAKeys     = []string{"employer_hsa_match", "preTaxDeductions.employerHSAMatch", "employerHSAMatch"}
	empFSAKeys       = []string{"employee_fsa_contribution", "preTaxDeductions.employeeFSA", "employeeFSA", "fsa_contribution"}
	matchFSAKeys     = []string{"employer_fsa_match", "preTaxDeductions.employerFSAMatch", "employerFSAMatch"}
	healthKeys       = []string{"health_insurance", "preTaxDeductions.healthInsurance", "healthInsurance"}
	otherPreKeys     = []string{"other_pre_tax_deductions", "preTaxDeductions.other", "otherPreTaxDeductions"}
	garnishmentsKeys = []string{"garnishments", "postTaxDeductions.garnishments"}
	otherPostKeys    = []string{"other_post_tax_deductions", "postTaxDeductions.other", "otherPostTaxDeductions"}

	// Insurance synonyms with no canonical slot of their own fold into the
	// pre-tax "other" bucket.
	dentalKeys = []string{"dental_insurance", "dentalInsurance"}
	visionKeys = []string{"vision_insurance", "visionInsurance"}
)

// lookup resolves a candidate key against the record, following one level of
// nesting for dotted candidates.
func lookup(record map[string]interface{}, key string) (interface{}, bool) {
	if parent, child, ok := strings.Cut(key, "."); ok {
		nested, found := record[parent]
		if !found {
			return nil, false
		}
		obj, isMap := nested.(map[string]interface{})
		if !isMap {
			return nil, false
		}
		v, found := obj[child]
		return v, found
	}
	v, found := record[key]
	return v, found
}

// resolveNumber returns the first candidate present in the record, coerced
// to a non-negative number. Missing or unparseable values yield 0.
func resolveNumber(record map[string]interface{}, candidates []string) float64 {
	for _, key := range candidates {
		v, found := lookup(record, key)
		if !found || v == nil {
			continue
		}
		return coerceNumber(v)
	}
	return 0
}

// resolveString returns the first candidate present in the record as a
// string, or "" when every candidate is missing.
func resolveString(record map[string]interface{}, candidates []string) string {
	for _, key := range candidates {
		v, found := lookup(record, key)
		if !found || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func coerceNumber(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return -n
		}
		return n
	case string:
		f, _ := models.ParseAmount(n).Float64()
		if f < 0 {
			return -f
		}
		return f
	default:
		return 0
	}
}
