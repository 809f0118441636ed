package types

import "errors"

// Defaults for the local language-model endpoint.
const (
	DefaultOllamaURL   = "http://127.0.0.1:11434"
	DefaultOllamaModel = "llama3.1:8b"
)

// Config validation errors.
var (
	ErrDataDirEmpty     = errors.New("data_dir must not be empty")
	ErrOllamaURLEmpty   = errors.New("ollama_url must not be empty")
	ErrOllamaModelEmpty = errors.New("ollama_model must not be empty")
)

// Config holds the resolved runtime configuration: where the database lives
// and how to reach the local chat endpoint.
type Config struct {
	DataDir     string `json:"data_dir" yaml:"data_dir"`
	OllamaURL   string `json:"ollama_url" yaml:"ollama_url"`
	OllamaModel string `json:"ollama_model" yaml:"ollama_model"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.OllamaURL == "" {
		return ErrOllamaURLEmpty
	}
	if c.OllamaModel == "" {
		return ErrOllamaModelEmpty
	}
	return nil
}
