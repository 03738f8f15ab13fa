package store

import (
	"testing"

	"mbaxter/ledgerize/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecordStore(t *testing.T) *RecordStore {
	t.Helper()
	return NewRecordStore(NewFileKV(t.TempDir()))
}

func TestRecordStore_EmptyStart(t *testing.T) {
	s := newTestRecordStore(t)
	collection, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, collection.Transactions)
	assert.Empty(t, collection.Paychecks)
}

func TestRecordStore_AddTransactions(t *testing.T) {
	s := newTestRecordStore(t)

	require.NoError(t, s.AddTransactions([]models.Transaction{
		{ID: "t1", Date: "2026-01-15", Merchant: "Starbucks", Amount: 4.5, Category: models.CategoryEatingOut},
	}))
	require.NoError(t, s.AddTransactions([]models.Transaction{
		{ID: "t2", Date: "2026-01-16", Merchant: "Safeway", Amount: 60, Category: models.CategoryGroceries},
	}))

	collection, err := s.Load()
	require.NoError(t, err)
	require.Len(t, collection.Transactions, 2)
	assert.Equal(t, "t1", collection.Transactions[0].ID)
	assert.Equal(t, "t2", collection.Transactions[1].ID)
}

func TestRecordStore_AddPaychecks(t *testing.T) {
	s := newTestRecordStore(t)

	require.NoError(t, s.AddPaychecks([]models.Paycheck{
		{ID: "p1", GrossAmount: 5000, PayDate: "2026-01-15", Source: models.SourceImported},
	}))

	collection, err := s.Load()
	require.NoError(t, err)
	require.Len(t, collection.Paychecks, 1)
	assert.Equal(t, "p1", collection.Paychecks[0].ID)
	assert.Equal(t, 5000.0, collection.Paychecks[0].GrossAmount)
}

func TestRecordStore_Recategorize(t *testing.T) {
	s := newTestRecordStore(t)
	require.NoError(t, s.AddTransactions([]models.Transaction{
		{ID: "t1", Date: "2026-01-15", Merchant: "Blue Bottle", Amount: 6, Category: models.CategoryUnknown},
		{ID: "t2", Date: "2026-01-16", Merchant: "Safeway", Amount: 60, Category: models.CategoryGroceries},
	}))

	merchant, err := s.Recategorize("t1", models.CategoryEatingOut)
	require.NoError(t, err)
	assert.Equal(t, "Blue Bottle", merchant)

	collection, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, models.CategoryEatingOut, collection.Transactions[0].Category)
	// Other transactions are untouched.
	assert.Equal(t, models.CategoryGroceries, collection.Transactions[1].Category)
}

func TestRecordStore_RecategorizeNotFound(t *testing.T) {
	s := newTestRecordStore(t)
	_, err := s.Recategorize("missing", models.CategoryEatingOut)
	assert.Error(t, err)
}

func TestRecordStore_DeleteTransaction(t *testing.T) {
	s := newTestRecordStore(t)
	require.NoError(t, s.AddTransactions([]models.Transaction{
		{ID: "t1", Merchant: "A"},
		{ID: "t2", Merchant: "B"},
	}))

	require.NoError(t, s.DeleteTransaction("t1"))
	collection, err := s.Load()
	require.NoError(t, err)
	require.Len(t, collection.Transactions, 1)
	assert.Equal(t, "t2", collection.Transactions[0].ID)

	assert.Error(t, s.DeleteTransaction("t1"))
}

func TestRecordStore_DeletePaycheck(t *testing.T) {
	s := newTestRecordStore(t)
	require.NoError(t, s.AddPaychecks([]models.Paycheck{
		{ID: "p1", Source: models.SourceImported},
		{ID: "p2", Source: models.SourceImported},
	}))

	require.NoError(t, s.DeletePaycheck("p2"))
	collection, err := s.Load()
	require.NoError(t, err)
	require.Len(t, collection.Paychecks, 1)
	assert.Equal(t, "p1", collection.Paychecks[0].ID)

	assert.Error(t, s.DeletePaycheck("p2"))
}

func TestRecordStore_ClearPaychecks(t *testing.T) {
	s := newTestRecordStore(t)
	require.NoError(t, s.AddTransactions([]models.Transaction{{ID: "t1"}}))
	require.NoError(t, s.AddPaychecks([]models.Paycheck{{ID: "p1"}, {ID: "p2"}}))

	require.NoError(t, s.ClearPaychecks())
	collection, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, collection.Paychecks)
	assert.Len(t, collection.Transactions, 1)
}

func TestRecordStore_MigratesLegacyPaychecksOnLoad(t *testing.T) {
	kv := NewFileKV(t.TempDir())

	// Seed the slot with a legacy flat paycheck shape.
	require.NoError(t, kv.Set(models.SlotRecords, map[string]interface{}{
		"transactions": []interface{}{},
		"paychecks": []interface{}{
			map[string]interface{}{
				"id":               "legacy-1",
				"gross_amount":     5000.0,
				"medicare_amount":  30.0,
				"fsa_contribution": 50.0,
			},
		},
	}))

	s := NewRecordStore(kv)
	collection, err := s.Load()
	require.NoError(t, err)
	require.Len(t, collection.Paychecks, 1)

	p := collection.Paychecks[0]
	assert.Equal(t, "legacy-1", p.ID)
	assert.Equal(t, 5000.0, p.GrossAmount)
	assert.Equal(t, 50.0, p.PreTaxDeductions.EmployeeFSA)
	assert.Zero(t, p.Medicare)

	// The migration was written back: a raw read sees the canonical shape.
	var stored storedCollection
	found, err := kv.Get(models.SlotRecords, &stored)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, stored.Paychecks, 1)
	assert.Contains(t, string(stored.Paychecks[0]), "preTaxDeductions")
}
