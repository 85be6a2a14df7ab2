package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/smith505/youtube-shorts-manager/internal/cache"
	"github.com/smith505/youtube-shorts-manager/internal/llm"
	"github.com/smith505/youtube-shorts-manager/internal/model"
	"github.com/smith505/youtube-shorts-manager/internal/pipeline"
	"github.com/smith505/youtube-shorts-manager/internal/store"
	"github.com/spf13/viper"
)

// buildConfig assembles the effective configuration: defaults, then config
// file and environment via viper, then persistent flags.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	// Config structs carry yaml tags only; tell the decoder to use them.
	err := viper.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.Output.Verbose = verbose

	if storeDir != "" {
		cfg.Store.Dir = storeDir
	}
	if cfg.Store.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("find home directory: %w", err)
		}
		cfg.Store.Dir = filepath.Join(home, ".shortsman", "channels")
	}

	return cfg, nil
}

// buildStore opens the channel store, with the title-snapshot cache attached
// when enabled.
func buildStore(cfg *model.Config) (store.Store, error) {
	fs, err := store.NewFileStore(cfg.Store.Dir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if cfg.Cache.Enabled {
		c := cache.NewMemoryCache(cfg.Cache.MemoryTTL, 2*cfg.Cache.MemoryTTL)
		fs = fs.WithCache(c, cfg.Cache.MemoryTTL)
	}
	return fs, nil
}

// resolveAPIKey fills the provider API key from the environment when the
// config carries none.
func resolveAPIKey(cfg *model.Config) error {
	if cfg.LLM.APIKey != "" {
		return nil
	}
	switch cfg.LLM.Provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}

// buildPipeline wires the store, generator, and filter for generation
// commands. Read-only commands pass withGenerator=false and skip the API
// key requirement.
func buildPipeline(cfg *model.Config, withGenerator bool) (*pipeline.Pipeline, store.Store, error) {
	st, err := buildStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	if withGenerator {
		if err := resolveAPIKey(cfg); err != nil {
			return nil, nil, err
		}
	}
	llmCfg := llm.ConfigFromModel(cfg.LLM)
	if !withGenerator {
		llmCfg.Provider = ""
	}

	gen, err := llm.NewGenerator(llmCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("configure provider: %w", err)
	}

	return pipeline.NewPipeline(cfg, st, gen), st, nil
}
