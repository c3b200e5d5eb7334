package lox

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config controls REPL ergonomics and resource limits that the language
// itself leaves unspecified. It is never required: when no file is found
// by discovery, DefaultConfig is used unchanged. A path given explicitly
// must exist.
type Config struct {
	HistoryFile        string `yaml:"history_file"`
	Prompt             string `yaml:"prompt"`
	ContinuationPrompt string `yaml:"continuation_prompt"`
	MaxCallDepth       int    `yaml:"max_call_depth"`
}

// DefaultConfig is what a session runs with when no glox.yaml is found.
func DefaultConfig() Config {
	return Config{
		HistoryFile:        ".glox_history",
		Prompt:             "> ",
		ContinuationPrompt: "... ",
		MaxCallDepth:       1024,
	}
}

// LoadConfig searches, in order, an explicit path (if non-empty),
// ./glox.yaml, then $HOME/.glox.yaml, and decodes the first one found
// over DefaultConfig. It is not an error for none to exist.
func LoadConfig(explicitPath string) (Config, error) {
	cfg := DefaultConfig()

	path, err := resolveConfigPath(explicitPath)
	if err != nil {
		return cfg, err
	}
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if explicitPath != "" {
			return cfg, fmt.Errorf("config: open %s: %w", path, err)
		}
		return cfg, nil
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func resolveConfigPath(explicitPath string) (string, error) {
	if explicitPath != "" {
		return explicitPath, nil
	}
	if _, err := os.Stat("glox.yaml"); err == nil {
		return "glox.yaml", nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}
	candidate := filepath.Join(home, ".glox.yaml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", nil
}
