package model

import "time"

// Config is the complete application configuration
type Config struct {
	Dedup       DedupConfig       `yaml:"dedup"`
	LLM         LLMConfig         `yaml:"llm"`
	Store       StoreConfig       `yaml:"store"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// DedupConfig holds the tunable duplicate-detection thresholds.
// The numeric values are product-tunable, not fixed contracts.
type DedupConfig struct {
	// JaccardThreshold is the base content-word overlap required to call
	// two facts similar (0-1).
	JaccardThreshold float64 `yaml:"jaccard_threshold"`

	// SameCategoryThreshold replaces JaccardThreshold when both facts fall
	// into the same non-general topic category. Lower is stricter.
	SameCategoryThreshold float64 `yaml:"same_category_threshold"`

	// SequenceThreshold is the minimum matching-blocks ratio between the
	// normalized fact strings (0-1).
	SequenceThreshold float64 `yaml:"sequence_threshold"`

	// ActorOverlapThreshold is the low Jaccard bar applied when both facts
	// name the same actor(s).
	ActorOverlapThreshold float64 `yaml:"actor_overlap_threshold"`

	// PatternOverlapThreshold is the low Jaccard bar applied when both
	// facts trip the same co-occurrence pattern rule.
	PatternOverlapThreshold float64 `yaml:"pattern_overlap_threshold"`

	// MaxPerMovieCategory caps how many facts in the same topic category a
	// single movie may accumulate before new ones are blocked.
	MaxPerMovieCategory int `yaml:"max_per_movie_category"`

	// BannedMoviesLimit caps the banned-movies block spliced into
	// generation prompts, for token-budget control.
	BannedMoviesLimit int `yaml:"banned_movies_limit"`
}

// LLMConfig holds text-generation provider configuration
type LLMConfig struct {
	Provider    string  `yaml:"provider"` // openai, anthropic, ollama
	Model       string  `yaml:"model"`
	APIKey      string  `yaml:"api_key,omitempty"`
	BaseURL     string  `yaml:"base_url,omitempty"`
	Timeout     int     `yaml:"timeout"` // seconds
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`

	// Rate limiting for generation calls
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`

	// Proxy settings
	HTTPProxy  string `yaml:"http_proxy,omitempty"`
	HTTPSProxy string `yaml:"https_proxy,omitempty"`
	NoProxy    string `yaml:"no_proxy,omitempty"`
}

// StoreConfig holds channel store configuration
type StoreConfig struct {
	// Dir is the root directory holding one subdirectory per channel.
	Dir string `yaml:"dir"`
}

// CacheConfig holds title-snapshot cache configuration
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
}

// ConcurrencyConfig holds worker pool configuration
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers"`
}

// OutputConfig holds output formatting configuration
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults. Threshold defaults follow the
// strictest band observed in production tuning; all of them can be overridden
// via config file, environment, or flags.
func DefaultConfig() *Config {
	return &Config{
		Dedup: DedupConfig{
			JaccardThreshold:        0.6,
			SameCategoryThreshold:   0.3,
			SequenceThreshold:       0.8,
			ActorOverlapThreshold:   0.15,
			PatternOverlapThreshold: 0.15,
			MaxPerMovieCategory:     2,
			BannedMoviesLimit:       200,
		},
		LLM: LLMConfig{
			Provider:          "openai",
			Model:             "",
			Timeout:           60,
			MaxTokens:         2000,
			Temperature:       0.9,
			RequestsPerSecond: 0.5,
			Burst:             2,
		},
		Store: StoreConfig{
			Dir: "", // resolved to ~/.shortsman/channels at startup
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 5 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 2,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
