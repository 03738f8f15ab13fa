package models

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is the canonical, normalized representation of a single
// spending transaction. Instances are created by the normalizer and owned by
// the record collection; the only mutation after creation is an explicit user
// recategorization of the Category field.
type Transaction struct {
	ID               string  `json:"id" csv:"ID"`
	Date             string  `json:"date" csv:"Date"` // always YYYY-MM-DD
	Merchant         string  `json:"merchant" csv:"Merchant"`
	Amount           float64 `json:"amount" csv:"Amount"` // non-negative magnitude
	Category         string  `json:"category" csv:"Category"`
	OriginalCategory string  `json:"originalCategory,omitempty" csv:"OriginalCategory"`
}

// RawTransaction is the permissive import shape accepted from AI output,
// pasted JSON, or CSV rows. Amount keeps its sign so the categorizer can see
// refunds; the normalizer consumes the sign when producing a Transaction.
type RawTransaction struct {
	Date     string
	Merchant string
	Amount   float64
	Category string
}

// rawTransactionJSON mirrors the accepted wire keys. Merchant falls back to
// "description" then "name" because pasted exports use either.
type rawTransactionJSON struct {
	Date        string          `json:"date"`
	Merchant    string          `json:"merchant"`
	Description string          `json:"description"`
	Name        string          `json:"name"`
	Amount      json.RawMessage `json:"amount"`
	Category    string          `json:"category"`
}

// UnmarshalJSON accepts amounts as JSON numbers or as strings such as
// "$1,234.50". Unparseable amounts become zero rather than an error.
func (r *RawTransaction) UnmarshalJSON(data []byte) error {
	var raw rawTransactionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Date = raw.Date
	r.Merchant = raw.Merchant
	if r.Merchant == "" {
		r.Merchant = raw.Description
	}
	if r.Merchant == "" {
		r.Merchant = raw.Name
	}
	r.Category = raw.Category
	r.Amount = coerceRawAmount(raw.Amount)
	return nil
}

func coerceRawAmount(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		f, _ := ParseAmount(s).Float64()
		return f
	}
	return 0
}

// ParseAmount parses a string amount to decimal.Decimal. Currency symbols,
// thousand separators and surrounding whitespace are stripped first.
// Unparseable input yields decimal.Zero.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, "$", "")
	amount = strings.ReplaceAll(amount, ",", "")
	amount = strings.ReplaceAll(amount, " ", "")
	// Accounting notation for negatives: (12.34)
	if strings.HasPrefix(amount, "(") && strings.HasSuffix(amount, ")") {
		amount = "-" + strings.TrimSuffix(strings.TrimPrefix(amount, "("), ")")
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}

var merchantSpaces = regexp.MustCompile(`\s+`)

// NormalizeMerchant trims the merchant name and collapses internal runs of
// whitespace to a single space.
func NormalizeMerchant(merchant string) string {
	return merchantSpaces.ReplaceAllString(strings.TrimSpace(merchant), " ")
}

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsCanonicalDate reports whether s is exactly YYYY-MM-DD.
func IsCanonicalDate(s string) bool {
	return isoDatePattern.MatchString(s)
}

// InMonth reports whether the transaction's date belongs to the given
// YYYY-MM month. Membership is a plain prefix test on the date string.
func (t Transaction) InMonth(month string) bool {
	return strings.HasPrefix(t.Date, month)
}
