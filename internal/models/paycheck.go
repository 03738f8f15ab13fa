package models

// PreTaxDeductions is the fixed shape of pre-tax deduction sub-amounts.
type PreTaxDeductions struct {
	Employee401k      float64 `json:"employee401k"`
	Employer401kMatch float64 `json:"employer401kMatch"`
	EmployeeHSA       float64 `json:"employeeHSA"`
	EmployerHSAMatch  float64 `json:"employerHSAMatch"`
	EmployeeFSA       float64 `json:"employeeFSA"`
	EmployerFSAMatch  float64 `json:"employerFSAMatch"`
	HealthInsurance   float64 `json:"healthInsurance"`
	Other             float64 `json:"other"`
}

// PostTaxDeductions is the fixed shape of post-tax deduction sub-amounts.
type PostTaxDeductions struct {
	Garnishments float64 `json:"garnishments"`
	Other        float64 `json:"other"`
}

// Paycheck is the canonical, normalized representation of one pay statement.
// All amounts are non-negative. PayDate is YYYY-MM-DD or empty.
type Paycheck struct {
	ID                string            `json:"id"`
	PayPeriod         string            `json:"payPeriod"`
	GrossAmount       float64           `json:"grossAmount"`
	FederalTax        float64           `json:"federalTax"`
	StateTax          float64           `json:"stateTax"`
	LocalTax          float64           `json:"localTax"`
	Medicare          float64           `json:"medicare"`
	SocialSecurity    float64           `json:"socialSecurity"`
	PreTaxDeductions  PreTaxDeductions  `json:"preTaxDeductions"`
	PostTaxDeductions PostTaxDeductions `json:"postTaxDeductions"`
	NetAmount         float64           `json:"netAmount"`
	PayDate           string            `json:"payDate"`
	Source            string            `json:"source"`
}

// ApplyFSAMedicareGuard zeroes Medicare when an FSA employee contribution is
// present. One upstream extractor conflates the two labels on certain
// statement layouts; this guard prevents the resulting double count. It is
// not an accounting rule.
func (p *Paycheck) ApplyFSAMedicareGuard() {
	if p.PreTaxDeductions.EmployeeFSA > 0 {
		p.Medicare = 0
	}
}

// InMonth reports whether the paycheck's pay date belongs to the given
// YYYY-MM month.
func (p Paycheck) InMonth(month string) bool {
	return len(p.PayDate) >= len(month) && p.PayDate[:len(month)] == month
}
