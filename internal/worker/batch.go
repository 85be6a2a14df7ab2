package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/smith505/youtube-shorts-manager/internal/model"
)

// Runner defines the interface for generating scripts for a channel
type Runner interface {
	GenerateScripts(ctx context.Context, channel string, count int, extra string) ([]model.ScriptResult, error)
}

// GenerateJob represents a channel generation job
type GenerateJob struct {
	Channel string
	Count   int
	Extra   string
	Runner  Runner
}

// Execute executes the generation job
func (j *GenerateJob) Execute(ctx context.Context) Result {
	scripts, err := j.Runner.GenerateScripts(ctx, j.Channel, j.Count, j.Extra)
	return &GenerateResult{
		Channel: j.Channel,
		Scripts: scripts,
		Error:   err,
	}
}

// GenerateResult represents the result of a generation job
type GenerateResult struct {
	Channel string
	Scripts []model.ScriptResult
	Error   error
}

// GetError returns the error from the generation result
func (r *GenerateResult) GetError() error {
	return r.Error
}

// BatchProcessor generates scripts for multiple channels concurrently
type BatchProcessor struct {
	runner      Runner
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(runner Runner, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		runner:      runner,
		concurrency: concurrency,
	}
}

// ProcessChannels generates scripts for multiple channels concurrently.
// Channels are independent; per-channel ordering is enforced by the store
// lock inside the runner, not here.
func (b *BatchProcessor) ProcessChannels(ctx context.Context, channels []string, count int, extra string) []*GenerateResult {
	if len(channels) == 0 {
		return []*GenerateResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, channel := range channels {
		job := &GenerateJob{
			Channel: channel,
			Count:   count,
			Extra:   extra,
			Runner:  b.runner,
		}
		pool.Submit(job)
	}

	results := pool.Wait()

	generateResults := make([]*GenerateResult, len(results))
	for i, result := range results {
		generateResults[i] = result.(*GenerateResult)
	}

	return generateResults
}

// ProcessFile reads channel names from a file and processes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string, count int, extra string) ([]*GenerateResult, error) {
	channels, err := ReadChannelsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read channels: %w", err)
	}

	return b.ProcessChannels(ctx, channels, count, extra), nil
}

// ReadChannelsFromFile reads channel names from a file (one per line)
func ReadChannelsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var channels []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			channels = append(channels, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return channels, nil
}
