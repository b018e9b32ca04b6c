// Copyright 2026 Civic Archive Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the application configuration from a YAML file, with
// sensible defaults for a local single-machine setup. Secrets stay out of
// the file: the API key is named by environment variable, not by value.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/civicarchive/govdoc/ai"
	"github.com/civicarchive/govdoc/ingest"
)

// ModelsConfig configures the OpenAI-compatible embedding and generation
// services.
type ModelsConfig struct {
	EmbeddingHost          string  `yaml:"embedding_host"`
	GeneratorHost          string  `yaml:"generator_host"`
	APIKeyEnv              string  `yaml:"api_key_env"`
	EmbeddingModel         string  `yaml:"embedding_model"`
	GeneratorModel         string  `yaml:"generator_model"`
	Temperature            float64 `yaml:"temperature"`
	ContextWindow          int     `yaml:"context_window"`
	ReservedResponseTokens int     `yaml:"reserved_response_tokens"`
}

// ChunkingConfig configures the chunk size bounds, in words.
type ChunkingConfig struct {
	MinWords int `yaml:"min_words"`
	MaxWords int `yaml:"max_words"`
}

// StorageConfig configures the on-disk store.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// PipelineConfig configures the ingestion run.
type PipelineConfig struct {
	PoolSize           int `yaml:"pool_size"`
	RetryAttempts      int `yaml:"retry_attempts"`
	RetryBaseDelaySecs int `yaml:"retry_base_delay_secs"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Models   ModelsConfig   `yaml:"models"`
	Chunking ChunkingConfig `yaml:"chunking"`
	Storage  StorageConfig  `yaml:"storage"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// Load reads a config from path. If the file does not exist, returns
// defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./govdoc.yaml first, then ~/.config/govdoc/config.yaml.
// If neither exists, it writes defaults to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "govdoc.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}

	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}

	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// AIConfig maps the models section onto an ai.Config, resolving the API key
// from the named environment variable.
func (c *AppConfig) AIConfig() *ai.Config {
	opts := []ai.ConfigOption{
		ai.WithEmbeddingHost(c.Models.EmbeddingHost),
		ai.WithGeneratorHost(c.Models.GeneratorHost),
		ai.WithEmbeddingModel(c.Models.EmbeddingModel),
		ai.WithGeneratorModel(c.Models.GeneratorModel),
		ai.WithTemperature(c.Models.Temperature),
		ai.WithContextWindow(c.Models.ContextWindow),
		ai.WithReservedResponseTokens(c.Models.ReservedResponseTokens),
	}
	if key := os.Getenv(c.Models.APIKeyEnv); key != "" {
		opts = append(opts, ai.WithAPIKey(key))
	}
	return ai.NewConfig(opts...)
}

// RetryPolicy maps the pipeline section onto an ingest.RetryPolicy.
func (c *AppConfig) RetryPolicy() ingest.RetryPolicy {
	policy := ingest.DefaultRetryPolicy
	if c.Pipeline.RetryAttempts > 0 {
		policy.MaxAttempts = c.Pipeline.RetryAttempts
	}
	if c.Pipeline.RetryBaseDelaySecs > 0 {
		policy.BaseDelay = time.Duration(c.Pipeline.RetryBaseDelaySecs) * time.Second
	}
	return policy
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "govdoc", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	models := ai.DefaultConfig()
	return &AppConfig{
		Models: ModelsConfig{
			EmbeddingHost:          models.EmbeddingHost,
			GeneratorHost:          models.GeneratorHost,
			APIKeyEnv:              "GOVDOC_API_KEY",
			EmbeddingModel:         models.EmbeddingModel,
			GeneratorModel:         models.GeneratorModel,
			Temperature:            models.Temperature,
			ContextWindow:          models.ContextWindow,
			ReservedResponseTokens: models.ReservedResponseTokens,
		},
		Chunking: ChunkingConfig{
			MinWords: ingest.DefaultMinChunkSize,
			MaxWords: ingest.DefaultMaxChunkSize,
		},
		Storage: StorageConfig{
			Path: "govdoc.db",
		},
		Pipeline: PipelineConfig{
			RetryAttempts:      ingest.DefaultRetryPolicy.MaxAttempts,
			RetryBaseDelaySecs: 1,
		},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	defaults := defaultConfig()

	if cfg.Models.EmbeddingHost == "" {
		cfg.Models.EmbeddingHost = defaults.Models.EmbeddingHost
	}
	if cfg.Models.GeneratorHost == "" {
		cfg.Models.GeneratorHost = defaults.Models.GeneratorHost
	}
	if cfg.Models.APIKeyEnv == "" {
		cfg.Models.APIKeyEnv = defaults.Models.APIKeyEnv
	}
	if cfg.Models.EmbeddingModel == "" {
		cfg.Models.EmbeddingModel = defaults.Models.EmbeddingModel
	}
	if cfg.Models.GeneratorModel == "" {
		cfg.Models.GeneratorModel = defaults.Models.GeneratorModel
	}
	if cfg.Models.Temperature == 0 {
		cfg.Models.Temperature = defaults.Models.Temperature
	}
	if cfg.Models.ContextWindow == 0 {
		cfg.Models.ContextWindow = defaults.Models.ContextWindow
	}
	if cfg.Models.ReservedResponseTokens == 0 {
		cfg.Models.ReservedResponseTokens = defaults.Models.ReservedResponseTokens
	}

	if cfg.Chunking.MinWords == 0 {
		cfg.Chunking.MinWords = defaults.Chunking.MinWords
	}
	if cfg.Chunking.MaxWords == 0 {
		cfg.Chunking.MaxWords = defaults.Chunking.MaxWords
	}

	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaults.Storage.Path
	}

	if cfg.Pipeline.RetryAttempts == 0 {
		cfg.Pipeline.RetryAttempts = defaults.Pipeline.RetryAttempts
	}
	if cfg.Pipeline.RetryBaseDelaySecs == 0 {
		cfg.Pipeline.RetryBaseDelaySecs = defaults.Pipeline.RetryBaseDelaySecs
	}
}
