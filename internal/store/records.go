package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"mbaxter/ledgerize/internal/logging"
	"mbaxter/ledgerize/internal/models"
	"mbaxter/ledgerize/internal/paystub"
)

// RecordStore owns the persisted record collection. Every operation is a
// single read-modify-write of the whole collection guarded by one mutex;
// there is no finer-grained locking because there is no concurrent mutator.
type RecordStore struct {
	kv KV
	mu sync.Mutex
}

// storedCollection keeps paychecks raw so the migration can inspect legacy
// shapes before they are decoded into the canonical struct.
type storedCollection struct {
	Transactions []models.Transaction `json:"transactions"`
	Paychecks    []json.RawMessage    `json:"paychecks"`
}

// NewRecordStore creates a RecordStore over the given KV.
func NewRecordStore(kv KV) *RecordStore {
	return &RecordStore{kv: kv}
}

// Load reads the persisted collection, running the paycheck migration over
// it. A migrated collection is written back before Load returns.
func (s *RecordStore) Load() (models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *RecordStore) load() (models.Collection, error) {
	var stored storedCollection
	found, err := s.kv.Get(models.SlotRecords, &stored)
	if err != nil {
		return models.Collection{}, err
	}
	if !found {
		return models.Collection{}, nil
	}

	paychecks, migrated, err := paystub.Migrate(stored.Paychecks)
	if err != nil {
		return models.Collection{}, fmt.Errorf("paycheck migration failed: %w", err)
	}

	collection := models.Collection{
		Transactions: stored.Transactions,
		Paychecks:    paychecks,
	}
	if migrated {
		log.WithField(logging.FieldCount, len(paychecks)).Info("Migrated paycheck records to current shape")
		if err := s.kv.Set(models.SlotRecords, collection); err != nil {
			return models.Collection{}, err
		}
	}
	return collection, nil
}

func (s *RecordStore) save(collection models.Collection) error {
	return s.kv.Set(models.SlotRecords, collection)
}

// AddTransactions appends transactions to the collection.
func (s *RecordStore) AddTransactions(txs []models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	collection, err := s.load()
	if err != nil {
		return err
	}
	collection.Transactions = append(collection.Transactions, txs...)
	return s.save(collection)
}

// AddPaychecks appends paychecks to the collection.
func (s *RecordStore) AddPaychecks(paychecks []models.Paycheck) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	collection, err := s.load()
	if err != nil {
		return err
	}
	collection.Paychecks = append(collection.Paychecks, paychecks...)
	return s.save(collection)
}

// Recategorize changes one transaction's category and returns its normalized
// merchant name so the caller can teach the mapping store. Other
// transactions are never rewritten.
func (s *RecordStore) Recategorize(id, category string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	collection, err := s.load()
	if err != nil {
		return "", err
	}
	for i := range collection.Transactions {
		if collection.Transactions[i].ID == id {
			collection.Transactions[i].Category = category
			if err := s.save(collection); err != nil {
				return "", err
			}
			return collection.Transactions[i].Merchant, nil
		}
	}
	return "", fmt.Errorf("transaction not found: %s", id)
}

// DeleteTransaction removes one transaction from the collection.
func (s *RecordStore) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	collection, err := s.load()
	if err != nil {
		return err
	}
	kept := collection.Transactions[:0]
	removed := false
	for _, tx := range collection.Transactions {
		if tx.ID == id {
			removed = true
			continue
		}
		kept = append(kept, tx)
	}
	if !removed {
		return fmt.Errorf("transaction not found: %s", id)
	}
	collection.Transactions = kept
	return s.save(collection)
}

// DeletePaycheck removes one paycheck from the collection.
func (s *RecordStore) DeletePaycheck(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	collection, err := s.load()
	if err != nil {
		return err
	}
	kept := collection.Paychecks[:0]
	removed := false
	for _, p := range collection.Paychecks {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return fmt.Errorf("paycheck not found: %s", id)
	}
	collection.Paychecks = kept
	return s.save(collection)
}

// ClearPaychecks removes every paycheck from the collection.
func (s *RecordStore) ClearPaychecks() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	collection, err := s.load()
	if err != nil {
		return err
	}
	collection.Paychecks = nil
	return s.save(collection)
}
