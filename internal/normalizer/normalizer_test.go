package normalizer

import (
	"errors"
	"testing"

	"mbaxter/ledgerize/internal/logging"
	"mbaxter/ledgerize/internal/models"
	"mbaxter/ledgerize/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNormalizer() *Normalizer {
	return New(nil, &logging.MockLogger{})
}

func TestFinalize(t *testing.T) {
	n := newTestNormalizer()

	raw := []models.RawTransaction{
		{Date: "2026-01-15", Merchant: "  Starbucks  ", Amount: 4.50},
		{Date: "01/20", Merchant: "Dropped Bad Date", Amount: 10.00},
		{Date: "2026-01-16", Merchant: "Shell Gas", Amount: -40.00, Category: "Fuel"},
	}

	out := n.Finalize(raw, nil)
	require.Len(t, out, 2)

	first := out[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "2026-01-15", first.Date)
	assert.Equal(t, "Starbucks", first.Merchant)
	assert.Equal(t, 4.50, first.Amount)
	assert.Equal(t, models.CategoryEatingOut, first.Category)
	assert.Empty(t, first.OriginalCategory)

	second := out[1]
	assert.Equal(t, "Shell Gas", second.Merchant)
	// The sign was consumed by categorization, the magnitude stored.
	assert.Equal(t, 40.00, second.Amount)
	assert.Equal(t, models.CategoryPayment, second.Category)
	assert.Equal(t, "Fuel", second.OriginalCategory)

	// Fresh ids per transaction.
	assert.NotEqual(t, first.ID, second.ID)
}

func TestFinalize_MappingsApplied(t *testing.T) {
	n := newTestNormalizer()
	mappings := map[string]string{"Zorblax Systems": models.CategoryUtilities}

	out := n.Finalize([]models.RawTransaction{
		{Date: "2026-01-15", Merchant: "Zorblax Systems", Amount: 12.00},
	}, mappings)
	require.Len(t, out, 1)
	assert.Equal(t, models.CategoryUtilities, out[0].Category)
}

func TestFinalize_PreservesOrder(t *testing.T) {
	n := newTestNormalizer()

	raw := []models.RawTransaction{
		{Date: "2026-01-20", Merchant: "B", Amount: 2},
		{Date: "2026-01-10", Merchant: "A", Amount: 1},
		{Date: "2026-01-15", Merchant: "C", Amount: 3},
	}
	out := n.Finalize(raw, nil)
	require.Len(t, out, 3)
	assert.Equal(t, "B", out[0].Merchant)
	assert.Equal(t, "A", out[1].Merchant)
	assert.Equal(t, "C", out[2].Merchant)
}

func TestParseJSON(t *testing.T) {
	data := []byte(`[
		{"date":"2026-01-15","merchant":"Starbucks","amount":4.5},
		{"date":"2026-01-16","description":"Shell Gas","amount":"$40.00"}
	]`)

	records, err := ParseJSON(data)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Starbucks", records[0].Merchant)
	assert.Equal(t, "Shell Gas", records[1].Merchant)
	assert.Equal(t, 40.00, records[1].Amount)
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := ParseJSON([]byte(`{not json`))
	require.Error(t, err)

	var formatErr *parsererror.InvalidFormatError
	assert.True(t, errors.As(err, &formatErr))
}
