package llm

import (
	"context"
	"fmt"
)

// Generator wraps a configured provider and owns the per-call defaults. A
// Generator with no provider is valid and reports itself disabled, which
// lets the CLI run read-only commands without API keys.
type Generator struct {
	provider Provider
	config   Config
}

// NewGenerator creates a generator from configuration. An empty provider
// name yields a disabled generator, not an error.
func NewGenerator(config Config) (*Generator, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Generator{provider: provider, config: config}, nil
}

// NewGeneratorWithProvider wires an explicit provider (used by tests)
func NewGeneratorWithProvider(provider Provider, config Config) *Generator {
	return &Generator{provider: provider, config: config}
}

// IsEnabled reports whether a provider is configured
func (g *Generator) IsEnabled() bool {
	return g.provider != nil
}

// ProviderName returns the active provider's name, or "" when disabled
func (g *Generator) ProviderName() string {
	if g.provider == nil {
		return ""
	}
	return g.provider.Name()
}

// Generate runs one generation call with the configured model, token limit,
// and temperature.
func (g *Generator) Generate(ctx context.Context, prompt string) (*GenerateResponse, error) {
	if g.provider == nil {
		return nil, fmt.Errorf("no generation provider configured")
	}

	return g.provider.Generate(ctx, GenerateRequest{
		Prompt:      prompt,
		Model:       g.config.Model,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
}
