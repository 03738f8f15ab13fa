// Package store provides persistence for application data: two independent
// JSON key-value slots (merchant mappings and the record collection) plus the
// optional keyword rules file.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mbaxter/ledgerize/internal/categorizer"
	"mbaxter/ledgerize/internal/logging"
	"mbaxter/ledgerize/internal/models"

	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// KV is the persistence contract the core depends on: slot-addressed get and
// set of JSON-serializable values. Each slot is read once at startup and
// written after every mutation.
type KV interface {
	// Get loads the value stored in slot into v. It returns false when the
	// slot has never been written.
	Get(slot string, v interface{}) (bool, error)

	// Set synchronously persists v into slot.
	Set(slot string, v interface{}) error
}

// FileKV implements KV with one JSON file per slot inside a data directory.
type FileKV struct {
	Dir string
}

// NewFileKV creates a FileKV rooted at dir. An empty dir resolves to the
// default data directory.
func NewFileKV(dir string) *FileKV {
	if dir == "" {
		dir = DefaultDataDir()
	}
	return &FileKV{Dir: dir}
}

// DefaultDataDir returns the standard location for persisted data.
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".ledgerize"
	}
	return filepath.Join(homeDir, ".config", "ledgerize")
}

func (s *FileKV) slotPath(slot string) string {
	return filepath.Join(s.Dir, slot+".json")
}

// Get loads a slot's JSON document into v.
func (s *FileKV) Get(slot string, v interface{}) (bool, error) {
	data, err := os.ReadFile(s.slotPath(slot))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("error reading slot %s: %w", slot, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("error decoding slot %s: %w", slot, err)
	}
	return true, nil
}

// Set writes v as the slot's JSON document. The write happens before Set
// returns; there is no buffering.
func (s *FileKV) Set(slot string, v interface{}) error {
	if err := os.MkdirAll(s.Dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding slot %s: %w", slot, err)
	}
	if err := os.WriteFile(s.slotPath(slot), data, models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing slot %s: %w", slot, err)
	}
	return nil
}

// LoadKeywordRules loads a keyword rules YAML file. A missing file is not an
// error; the caller falls back to the built-in table.
func LoadKeywordRules(path string) ([]categorizer.KeywordRule, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField(logging.FieldFile, path).Warn("Keyword rules file not found, using defaults")
			return nil, nil
		}
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var config categorizer.RulesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing rules file: %w", err)
	}
	if len(config.Categories) > 0 {
		return config.Categories, nil
	}

	// Some rules files are a bare list without the top-level key.
	var rules []categorizer.KeywordRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("error parsing rules file: %w", err)
	}
	return rules, nil
}
