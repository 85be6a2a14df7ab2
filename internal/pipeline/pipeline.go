package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/smith505/youtube-shorts-manager/internal/dedup"
	"github.com/smith505/youtube-shorts-manager/internal/extract"
	"github.com/smith505/youtube-shorts-manager/internal/llm"
	"github.com/smith505/youtube-shorts-manager/internal/model"
	"github.com/smith505/youtube-shorts-manager/internal/prompt"
	"github.com/smith505/youtube-shorts-manager/internal/store"
	"github.com/smith505/youtube-shorts-manager/internal/worker"
)

// Pipeline orchestrates one channel generation cycle: load the used-title
// snapshot, assemble the exclusion prompt, call the generator, extract the
// candidate titles, filter duplicates, and persist what survived.
type Pipeline struct {
	store     store.Store
	generator *llm.Generator
	filter    *dedup.Filter
	builder   *prompt.Builder
	limiter   *worker.Limiter
	config    *model.Config
}

// NewPipeline creates a pipeline from configuration and collaborators.
func NewPipeline(cfg *model.Config, st store.Store, gen *llm.Generator) *Pipeline {
	return &Pipeline{
		store:     st,
		generator: gen,
		filter:    dedup.NewFilter(cfg.Dedup),
		builder:   prompt.NewBuilder(cfg.Dedup.BannedMoviesLimit),
		limiter:   worker.NewLimiter(cfg.LLM.RequestsPerSecond, cfg.LLM.Burst),
		config:    cfg,
	}
}

// GenerateScripts generates count scripts for the channel, one generation
// call per script. The banned list is rebuilt from a fresh title snapshot
// before every call, so titles accepted for script N are excluded from
// script N+1.
//
// Each cycle runs under the channel's store lock: two concurrent runs for
// the same channel cannot both accept the same fact from the same snapshot.
func (p *Pipeline) GenerateScripts(ctx context.Context, channel string, count int, extra string) ([]model.ScriptResult, error) {
	if !p.generator.IsEnabled() {
		return nil, fmt.Errorf("no generation provider configured (set llm.provider)")
	}
	if count <= 0 {
		count = 1
	}

	var results []model.ScriptResult
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		var result model.ScriptResult
		err := p.store.WithLock(channel, func() error {
			var err error
			result, err = p.generateOne(ctx, channel, extra)
			return err
		})
		if err != nil {
			return results, fmt.Errorf("script %d of %d: %w", i+1, count, err)
		}

		if p.config.Output.Verbose {
			fmt.Fprintf(os.Stderr, "script %d/%d: %d accepted, %d rejected\n",
				i+1, count, len(result.Accepted), len(result.Rejected))
		}
		results = append(results, result)
	}

	return results, nil
}

// generateOne runs a single locked generation cycle.
func (p *Pipeline) generateOne(ctx context.Context, channel, extra string) (model.ScriptResult, error) {
	var result model.ScriptResult

	existing, err := p.store.Titles(channel)
	if err != nil {
		return result, fmt.Errorf("load titles: %w", err)
	}

	base, err := p.store.Prompt(channel)
	if err != nil {
		return result, fmt.Errorf("load prompt: %w", err)
	}

	fullPrompt := p.builder.Build(base, existing, extra)

	if err := p.limiter.Wait(ctx, p.generator.ProviderName()); err != nil {
		return result, fmt.Errorf("rate limit: %w", err)
	}

	resp, err := p.generator.Generate(ctx, fullPrompt)
	if err != nil {
		return result, fmt.Errorf("generate: %w", err)
	}

	candidates := extract.Titles(resp.Content)
	accepted, rejected := p.filter.FilterBatch(candidates, existing)

	if err := p.store.AppendTitles(channel, accepted); err != nil {
		return result, fmt.Errorf("persist titles: %w", err)
	}
	if err := p.store.AppendScript(channel, resp.Content); err != nil {
		return result, fmt.Errorf("persist script: %w", err)
	}

	result = model.ScriptResult{
		Script:   resp.Content,
		Accepted: accepted,
		Rejected: rejected,
		Model:    resp.Model,
		Tokens:   resp.TokensUsed,
	}
	return result, nil
}

// CheckTitle classifies a single candidate against the channel's current
// corpus without persisting anything.
func (p *Pipeline) CheckTitle(channel, title string) (bool, string, error) {
	existing, err := p.store.Titles(channel)
	if err != nil {
		return false, "", fmt.Errorf("load titles: %w", err)
	}
	dup, reason := p.filter.Classify(title, existing)
	return dup, reason, nil
}

// AddTitles manually adds titles to a channel, filtering duplicates the same
// way generation does. Returns the accepted and rejected partitions.
func (p *Pipeline) AddTitles(channel string, titles []string) ([]string, []model.RejectedTitle, error) {
	var accepted []string
	var rejected []model.RejectedTitle

	err := p.store.WithLock(channel, func() error {
		existing, err := p.store.Titles(channel)
		if err != nil {
			return fmt.Errorf("load titles: %w", err)
		}
		accepted, rejected = p.filter.FilterBatch(titles, existing)
		if err := p.store.AppendTitles(channel, accepted); err != nil {
			return fmt.Errorf("persist titles: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return accepted, rejected, nil
}
