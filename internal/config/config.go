// Package config provides configuration loading and management for fhscan.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/raysh454/fhscan/internal/logging"
	"github.com/raysh454/fhscan/internal/webclient"
)

// Config represents the complete fhscan configuration.
type Config struct {
	Server    ServerConfig     `yaml:"server"`
	Storage   StorageConfig    `yaml:"storage"`
	Scanner   ScannerConfig    `yaml:"scanner"`
	Batch     BatchConfig      `yaml:"batch"`
	WebClient webclient.Config `yaml:"webclient"`
	Log       LogConfig        `yaml:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	// ListenAddr is the address the API server binds (default: :8080)
	ListenAddr string `yaml:"listen_addr"`
	// AllowedOrigins for CORS; empty allows any origin.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// StorageConfig configures scan history.
type StorageConfig struct {
	// Root holds history.db (default: ~/.local/share/fhscan)
	Root string `yaml:"root"`
	// History enables recording single scans. Pointer so a file can turn it off.
	History *bool `yaml:"history"`
}

// HistoryEnabled reports History with a default of true.
func (s StorageConfig) HistoryEnabled() bool {
	return s.History == nil || *s.History
}

// ScannerConfig configures the rule catalog and default jurisdiction.
type ScannerConfig struct {
	// DefaultJurisdiction applies when a request names none ("" = none).
	DefaultJurisdiction string `yaml:"default_jurisdiction"`
	// OverlayFile is an optional YAML file of extra rules and alternatives.
	OverlayFile string `yaml:"overlay_file"`
}

// BatchConfig configures the batch runner.
type BatchConfig struct {
	MaxConcurrency int `yaml:"max_concurrency"`
	// MaxItems caps one batch request (default: 1000)
	MaxItems int `yaml:"max_items"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	history := true
	return &Config{
		Server: ServerConfig{
			ListenAddr: ":8080",
		},
		Storage: StorageConfig{
			Root:    "~/.local/share/fhscan",
			History: &history,
		},
		Batch: BatchConfig{
			MaxConcurrency: 8,
			MaxItems:       1000,
		},
		WebClient: webclient.DefaultConfig(),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Server.ListenAddr) == "" {
		problems = append(problems, "server.listen_addr is required")
	}
	if c.Batch.MaxConcurrency < 1 {
		problems = append(problems, "batch.max_concurrency must be at least 1")
	}
	if c.Batch.MaxItems < 1 {
		problems = append(problems, "batch.max_items must be at least 1")
	}
	switch c.WebClient.Client {
	case webclient.ClientNetHTTP, webclient.ClientChromedp:
	default:
		problems = append(problems, fmt.Sprintf("webclient.backend %q is not one of nethttp, chromedp", c.WebClient.Client))
	}
	if c.WebClient.Timeout < 0 || c.WebClient.IdleAfter < 0 {
		problems = append(problems, "webclient durations must not be negative")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, "log.level: "+err.Error())
	}
	if j := c.Scanner.DefaultJurisdiction; j != "" && !isCode(j) {
		problems = append(problems, fmt.Sprintf("scanner.default_jurisdiction %q is not a jurisdiction code", j))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func isCode(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// LoadFromFile reads a YAML file. Only keys present in the file are set, so
// the result is meant to be merged over defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Server.ListenAddr != "" {
		c.Server.ListenAddr = other.Server.ListenAddr
	}
	if len(other.Server.AllowedOrigins) > 0 {
		c.Server.AllowedOrigins = append([]string(nil), other.Server.AllowedOrigins...)
	}

	if other.Storage.Root != "" {
		c.Storage.Root = other.Storage.Root
	}
	if other.Storage.History != nil {
		h := *other.Storage.History
		c.Storage.History = &h
	}

	if other.Scanner.DefaultJurisdiction != "" {
		c.Scanner.DefaultJurisdiction = other.Scanner.DefaultJurisdiction
	}
	if other.Scanner.OverlayFile != "" {
		c.Scanner.OverlayFile = other.Scanner.OverlayFile
	}

	if other.Batch.MaxConcurrency != 0 {
		c.Batch.MaxConcurrency = other.Batch.MaxConcurrency
	}
	if other.Batch.MaxItems != 0 {
		c.Batch.MaxItems = other.Batch.MaxItems
	}

	wc := other.WebClient
	if wc.Client != "" {
		c.WebClient.Client = webclient.Client(strings.ToLower(string(wc.Client)))
	}
	if wc.Timeout != 0 {
		c.WebClient.Timeout = wc.Timeout
	}
	if wc.IdleAfter != 0 {
		c.WebClient.IdleAfter = wc.IdleAfter
	}
	if wc.UserAgent != "" {
		c.WebClient.UserAgent = wc.UserAgent
	}
	if wc.MaxBodyBytes != 0 {
		c.WebClient.MaxBodyBytes = wc.MaxBodyBytes
	}
	if wc.Headful {
		c.WebClient.Headful = true
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// StorageRoot is Storage.Root with ~ expanded.
func (c *Config) StorageRoot() string {
	return ExpandHome(c.Storage.Root)
}

// FetchTimeout is the webclient timeout, for callers that bound a whole URL scan.
func (c *Config) FetchTimeout() time.Duration {
	return c.WebClient.Timeout
}
