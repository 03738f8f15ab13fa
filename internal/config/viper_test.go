package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"LEDGERIZE_LOG_LEVEL",
		"LEDGERIZE_LOG_FORMAT",
		"LEDGERIZE_DATA_DIRECTORY",
		"LEDGERIZE_DATA_RULES_FILE",
		"LEDGERIZE_AI_ENABLED",
		"LEDGERIZE_AI_MODEL",
		"LEDGERIZE_AI_TIMEOUT_SECONDS",
		"LEDGERIZE_OCR_COMMAND",
		"GEMINI_API_KEY",
	}
	for _, key := range envVars {
		if err := os.Unsetenv(key); err != nil {
			t.Logf("Failed to unset %s: %v", key, err)
		}
	}
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "", config.Data.Directory)
	assert.Equal(t, "", config.Data.RulesFile)
	assert.False(t, config.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", config.AI.Model)
	assert.Equal(t, 30, config.AI.TimeoutSeconds)
	assert.Equal(t, "", config.OCR.Command)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	testEnvVars := map[string]string{
		"LEDGERIZE_LOG_LEVEL":   "debug",
		"LEDGERIZE_LOG_FORMAT":  "json",
		"LEDGERIZE_AI_ENABLED":  "true",
		"LEDGERIZE_AI_MODEL":    "gemini-1.5-pro",
		"LEDGERIZE_OCR_COMMAND": "paystub-ocr",
		"GEMINI_API_KEY":        "test-api-key",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.True(t, config.AI.Enabled)
	assert.Equal(t, "gemini-1.5-pro", config.AI.Model)
	assert.Equal(t, "paystub-ocr", config.OCR.Command)
	assert.Equal(t, "test-api-key", config.AI.APIKey)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")
	configContent := `
log:
  level: "warn"
  format: "json"
data:
  directory: "/tmp/ledgerize-test"
ocr:
  command: "paystub-ocr"
  args: ["--json"]
`
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Chdir(originalDir))
	}()
	require.NoError(t, os.Chdir(tempDir))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "/tmp/ledgerize-test", config.Data.Directory)
	assert.Equal(t, "paystub-ocr", config.OCR.Command)
	assert.Equal(t, []string{"--json"}, config.OCR.Args)
}

func TestInitializeConfig_Validation(t *testing.T) {
	t.Run("Invalid log level", func(t *testing.T) {
		clearTestEnvVars(t)
		t.Setenv("LEDGERIZE_LOG_LEVEL", "verbose")
		_, err := InitializeConfig()
		assert.Error(t, err)
	})

	t.Run("Invalid log format", func(t *testing.T) {
		clearTestEnvVars(t)
		t.Setenv("LEDGERIZE_LOG_FORMAT", "xml")
		_, err := InitializeConfig()
		assert.Error(t, err)
	})

	t.Run("AI enabled without API key", func(t *testing.T) {
		clearTestEnvVars(t)
		t.Setenv("LEDGERIZE_AI_ENABLED", "true")
		_, err := InitializeConfig()
		assert.Error(t, err)
	})

	t.Run("Timeout out of range", func(t *testing.T) {
		clearTestEnvVars(t)
		t.Setenv("LEDGERIZE_AI_ENABLED", "true")
		t.Setenv("GEMINI_API_KEY", "test-api-key")
		t.Setenv("LEDGERIZE_AI_TIMEOUT_SECONDS", "400")
		_, err := InitializeConfig()
		assert.Error(t, err)
	})
}
