// Package cmd defines the shared configuration record for the wisdom-miner commands.
package cmd

import "fmt"

// Default configuration values applied when neither the config file nor
// flags provide one.
const (
	DefaultRepo             = "elixir-lang/elixir"
	DefaultUser             = "josevalim"
	DefaultMinCommentLength = 100
	DefaultMaxIssues        = 100
	DefaultOutput           = "WISDOM.md"
	DefaultConcurrency      = 1
)

// Config represents the structure of wisdom-miner.yaml
type Config struct {
	Repo             string `yaml:"repo"`
	User             string `yaml:"user"`
	MinCommentLength int    `yaml:"min_comment_length"`
	MaxIssues        int    `yaml:"max_issues"`
	Output           string `yaml:"output"`
	Concurrency      int    `yaml:"concurrency,omitempty"`
}

// DefaultConfig returns a config populated with every default value.
func DefaultConfig() *Config {
	return &Config{
		Repo:             DefaultRepo,
		User:             DefaultUser,
		MinCommentLength: DefaultMinCommentLength,
		MaxIssues:        DefaultMaxIssues,
		Output:           DefaultOutput,
		Concurrency:      DefaultConcurrency,
	}
}

// ApplyDefaults fills any unset field with its default value, so partial
// config files remain usable.
func (c *Config) ApplyDefaults() {
	if c.Repo == "" {
		c.Repo = DefaultRepo
	}
	if c.User == "" {
		c.User = DefaultUser
	}
	if c.MinCommentLength == 0 {
		c.MinCommentLength = DefaultMinCommentLength
	}
	if c.MaxIssues == 0 {
		c.MaxIssues = DefaultMaxIssues
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Concurrency == 0 {
		c.Concurrency = DefaultConcurrency
	}
}

// Validate checks that the config describes a runnable mining job.
func (c *Config) Validate() error {
	if c.Repo == "" {
		return fmt.Errorf("repository is required")
	}
	if c.User == "" {
		return fmt.Errorf("user is required")
	}
	if c.MinCommentLength < 0 {
		return fmt.Errorf("min-length must not be negative, got %d", c.MinCommentLength)
	}
	if c.MaxIssues < 1 {
		return fmt.Errorf("max issues must be positive, got %d", c.MaxIssues)
	}
	if c.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	return nil
}
