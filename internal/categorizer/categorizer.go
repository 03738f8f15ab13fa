// Package categorizer decides the category for a merchant and amount. The
// decision order is fixed: refund/payment heuristic, user-learned merchant
// mappings, keyword rules, Unknown. Mappings are passed in explicitly by the
// caller; the engine keeps no hidden state between calls.
package categorizer

import (
	"regexp"
	"strings"

	"mbaxter/ledgerize/internal/logging"
	"mbaxter/ledgerize/internal/models"
)

// refundPattern matches merchant text that indicates a payment, credit, or
// refund rather than spending.
var refundPattern = regexp.MustCompile(`\b(payment|autopay|credit|refund|returned|reversal)\b`)

// Engine categorizes transactions using the refund heuristic, user mappings,
// and an ordered keyword rule table.
type Engine struct {
	rules  []KeywordRule
	logger logging.Logger
}

// NewEngine creates an Engine with the given keyword rules. Nil or empty
// rules fall back to the built-in table.
func NewEngine(rules []KeywordRule, logger logging.Logger) *Engine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{
		rules:  rules,
		logger: logger,
	}
}

// Categorize decides the category for a merchant and signed amount. The
// mappings table is the user-learned merchant→category dictionary; it is
// consulted after the refund heuristic, so a detected refund can never be
// overridden by a mapping.
func (e *Engine) Categorize(merchant string, amount float64, mappings map[string]string) string {
	normalized := models.NormalizeMerchant(merchant)
	if normalized == "" {
		return models.CategoryUnknown
	}

	lower := strings.ToLower(normalized)
	if amount < 0 || refundPattern.MatchString(lower) {
		return models.CategoryPayment
	}

	if category, found := e.lookupMapping(normalized, lower, mappings); found {
		return category
	}

	for _, rule := range e.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				e.logger.WithFields(
					logging.Field{Key: logging.FieldMerchant, Value: normalized},
					logging.Field{Key: "keyword", Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: rule.Category},
				).Debug("Categorized by keyword rule")
				return rule.Category
			}
		}
	}

	return models.CategoryUnknown
}

// lookupMapping tries an exact key match first, then a case-insensitive scan
// over the mapping table. A mapped value outside the closed category set is
// ignored rather than propagated.
func (e *Engine) lookupMapping(merchant, merchantLower string, mappings map[string]string) (string, bool) {
	if category, ok := mappings[merchant]; ok && models.IsValidCategory(category) {
		return category, true
	}
	for key, category := range mappings {
		if strings.ToLower(key) == merchantLower && models.IsValidCategory(category) {
			return category, true
		}
	}
	return "", false
}
