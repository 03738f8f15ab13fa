package store

import (
	"sync"

	"mbaxter/ledgerize/internal/logging"
	"mbaxter/ledgerize/internal/models"
)

// MappingStore holds the persistent merchant→category dictionary. It grows
// only through explicit user recategorization and is written back
// synchronously on every mutation.
type MappingStore struct {
	kv       KV
	mu       sync.RWMutex
	mappings map[string]string
}

// NewMappingStore creates a MappingStore and loads the persisted dictionary.
func NewMappingStore(kv KV) (*MappingStore, error) {
	s := &MappingStore{
		kv:       kv,
		mappings: make(map[string]string),
	}
	found, err := kv.Get(models.SlotMappings, &s.mappings)
	if err != nil {
		return nil, err
	}
	if s.mappings == nil {
		s.mappings = make(map[string]string)
	}
	if found {
		log.WithField(logging.FieldCount, len(s.mappings)).Debug("Loaded merchant mappings")
	}
	return s, nil
}

// Get returns a copy of the current mapping table.
func (s *MappingStore) Get() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.mappings))
	for k, v := range s.mappings {
		out[k] = v
	}
	return out
}

// Set records merchant→category and persists the dictionary before
// returning. Future imports of the merchant will categorize consistently;
// already-stored transactions are not rewritten.
func (s *MappingStore) Set(merchant, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mappings[merchant] = category
	return s.kv.Set(models.SlotMappings, s.mappings)
}
