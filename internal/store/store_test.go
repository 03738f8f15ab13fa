package store

import (
	"os"
	"path/filepath"
	"testing"

	"mbaxter/ledgerize/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestFileKV_GetMissingSlot(t *testing.T) {
	kv := NewFileKV(t.TempDir())

	var v map[string]string
	found, err := kv.Get("never-written", &v)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestFileKV_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	kv := NewFileKV(dir)

	in := map[string]string{"Starbucks": models.CategoryEatingOut}
	require.NoError(t, kv.Set("test-slot", in))

	// One JSON file per slot.
	_, err := os.Stat(filepath.Join(dir, "test-slot.json"))
	assert.NoError(t, err)

	var out map[string]string
	found, err := kv.Get("test-slot", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestFileKV_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	kv := NewFileKV(dir)

	require.NoError(t, kv.Set("slot", []string{"a"}))
	_, err := os.Stat(dir)
	assert.NoError(t, err)
}

func TestFileKV_CorruptSlot(t *testing.T) {
	dir := t.TempDir()
	kv := NewFileKV(dir)
	writeFile(t, filepath.Join(dir, "bad.json"), "{not json")

	var v map[string]string
	_, err := kv.Get("bad", &v)
	assert.Error(t, err)
}

func TestLoadKeywordRules(t *testing.T) {
	dir := t.TempDir()

	t.Run("Empty path", func(t *testing.T) {
		rules, err := LoadKeywordRules("")
		assert.NoError(t, err)
		assert.Nil(t, rules)
	})

	t.Run("Missing file uses defaults", func(t *testing.T) {
		rules, err := LoadKeywordRules(filepath.Join(dir, "missing.yaml"))
		assert.NoError(t, err)
		assert.Nil(t, rules)
	})

	t.Run("Top-level key", func(t *testing.T) {
		file := filepath.Join(dir, "rules.yaml")
		writeFile(t, file, `categories:
  - name: "Food & Groceries"
    keywords: ["supermarket", "grocery"]
  - name: "Rent/Mortgage"
    keywords: ["apartment", "rent"]
`)
		rules, err := LoadKeywordRules(file)
		require.NoError(t, err)
		require.Len(t, rules, 2)
		assert.Equal(t, models.CategoryGroceries, rules[0].Category)
		assert.Equal(t, []string{"supermarket", "grocery"}, rules[0].Keywords)
	})

	t.Run("Bare list", func(t *testing.T) {
		file := filepath.Join(dir, "bare.yaml")
		writeFile(t, file, `- name: "Travel"
  keywords: ["hotel"]
`)
		rules, err := LoadKeywordRules(file)
		require.NoError(t, err)
		require.Len(t, rules, 1)
		assert.Equal(t, models.CategoryTravel, rules[0].Category)
	})

	t.Run("Malformed", func(t *testing.T) {
		file := filepath.Join(dir, "malformed.yaml")
		writeFile(t, file, "categories: [unclosed")
		_, err := LoadKeywordRules(file)
		assert.Error(t, err)
	})
}
