package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicarchive/govdoc/ingest"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:11434/v1", cfg.Models.EmbeddingHost)
	assert.Equal(t, ingest.DefaultMinChunkSize, cfg.Chunking.MinWords)
	assert.Equal(t, "govdoc.db", cfg.Storage.Path)
}

func TestLoad_PartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "govdoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"models:\n  embedding_model: custom-embed\nchunking:\n  min_words: 50\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom-embed", cfg.Models.EmbeddingModel)
	assert.Equal(t, 50, cfg.Chunking.MinWords)
	assert.Equal(t, ingest.DefaultMaxChunkSize, cfg.Chunking.MaxWords, "unset fields keep defaults")
	assert.NotEmpty(t, cfg.Models.GeneratorModel)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("models: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := defaultConfig()
	cfg.Models.GeneratorModel = "round-trip-model"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestAIConfig_ResolvesKeyFromEnv(t *testing.T) {
	cfg := defaultConfig()
	cfg.Models.APIKeyEnv = "GOVDOC_TEST_KEY"
	t.Setenv("GOVDOC_TEST_KEY", "secret-token")

	ai := cfg.AIConfig()
	assert.Equal(t, "secret-token", ai.APIKey)
}

func TestAIConfig_NoEnvKeepsDefault(t *testing.T) {
	cfg := defaultConfig()
	cfg.Models.APIKeyEnv = "GOVDOC_TEST_KEY_UNSET"

	ai := cfg.AIConfig()
	assert.Equal(t, "none", ai.APIKey)
}

func TestRetryPolicy(t *testing.T) {
	cfg := defaultConfig()
	cfg.Pipeline.RetryAttempts = 5
	cfg.Pipeline.RetryBaseDelaySecs = 2

	policy := cfg.RetryPolicy()
	assert.Equal(t, 5, policy.MaxAttempts)
	assert.Equal(t, 2*time.Second, policy.BaseDelay)
}
