// Package paystub normalizes pay statement records from AI, OCR, and pasted
// JSON into the canonical Paycheck shape. Inputs vary in naming convention
// (snake_case vs camelCase) and structure (flat vs nested deductions); every
// target field resolves its candidate source keys in a fixed priority order.
package paystub

import (
	"encoding/json"
	"regexp"
	"time"

	"mbaxter/ledgerize/internal/dateutil"
	"mbaxter/ledgerize/internal/models"
	"mbaxter/ledgerize/internal/parsererror"

	"github.com/google/uuid"
)

// Normalize converts one permissive record into a canonical Paycheck.
// Missing or unparseable numeric fields become 0, missing text fields become
// empty; the FSA/Medicare guard is applied after extraction. fallbackYear
// resolves pay dates that carry no year.
func Normalize(record map[string]interface{}, fallbackYear int) models.Paycheck {
	p := models.Paycheck{
		ID:             uuid.New().String(),
		PayPeriod:      resolveString(record, payPeriodKeys),
		GrossAmount:    resolveNumber(record, grossKeys),
		FederalTax:     resolveNumber(record, federalKeys),
		StateTax:       resolveNumber(record, stateKeys),
		LocalTax:       resolveNumber(record, localKeys),
		Medicare:       resolveNumber(record, medicareKeys),
		SocialSecurity: resolveNumber(record, socialKeys),
		PreTaxDeductions: models.PreTaxDeductions{
			Employee401k:      resolveNumber(record, emp401kKeys),
			Employer401kMatch: resolveNumber(record, match401kKeys),
			EmployeeHSA:       resolveNumber(record, empHSAKeys),
			EmployerHSAMatch:  resolveNumber(record, matchHSAKeys),
			EmployeeFSA:       resolveNumber(record, empFSAKeys),
			EmployerFSAMatch:  resolveNumber(record, matchFSAKeys),
			HealthInsurance:   resolveNumber(record, healthKeys),
			Other: resolveNumber(record, otherPreKeys) +
				resolveNumber(record, dentalKeys) +
				resolveNumber(record, visionKeys),
		},
		PostTaxDeductions: models.PostTaxDeductions{
			Garnishments: resolveNumber(record, garnishmentsKeys),
			Other:        resolveNumber(record, otherPostKeys),
		},
		NetAmount: resolveNumber(record, netKeys),
		Source:    resolveString(record, sourceKeys),
	}

	if id := resolveString(record, []string{"id"}); id != "" {
		p.ID = id
	}
	if rawDate := resolveString(record, payDateKeys); rawDate != "" {
		p.PayDate = dateutil.Normalize(rawDate, fallbackYear)
	}
	if p.Source == "" {
		p.Source = models.SourceImported
	}

	p.ApplyFSAMedicareGuard()
	return p
}

// ParseJSON decodes a JSON payload holding either a single paycheck object
// or an array of them, and normalizes every record. Malformed JSON is a hard
// error; malformed individual fields zero-default.
func ParseJSON(data []byte, fallbackYear int) ([]models.Paycheck, error) {
	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		var single map[string]interface{}
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, &parsererror.InvalidFormatError{
				ExpectedFormat: "JSON paycheck object or array",
				Msg:            err.Error(),
			}
		}
		records = []map[string]interface{}{single}
	}

	paychecks := make([]models.Paycheck, 0, len(records))
	for _, record := range records {
		paychecks = append(paychecks, Normalize(record, fallbackYear))
	}
	return paychecks, nil
}

// ocrDirPattern matches the "<MonthName>OCR/" directory convention used by
// OCR batch drops, e.g. "scans/JanuaryOCR/stub.pdf".
var ocrDirPattern = regexp.MustCompile(`(?i)([A-Za-z]{3,})OCR[/\\]`)

// DetectOCRMonth extracts the month encoded in a source file path via the
// "<MonthName>OCR/" convention. It returns 0, false when the path does not
// follow the convention.
func DetectOCRMonth(sourcePath string) (int, bool) {
	m := ocrDirPattern.FindStringSubmatch(sourcePath)
	if m == nil {
		return 0, false
	}
	month := dateutil.MonthName(m[1])
	return month, month != 0
}

// ApplyOCROverride tags a paycheck as OCR-sourced and, when the source path
// encodes a month, overrides the pay date with the first day of that month.
func ApplyOCROverride(p *models.Paycheck, sourcePath string, year int) {
	p.Source = models.SourceOCR
	if year == 0 {
		year = time.Now().Year()
	}
	if month, ok := DetectOCRMonth(sourcePath); ok {
		p.PayDate = dateutil.FirstOfMonth(year, month)
	}
}
