package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/smith505/youtube-shorts-manager/internal/model"
)

// mockRunner implements Runner
type mockRunner struct {
	mu       sync.Mutex
	calls    []string
	failFor  map[string]bool
	perCount int
}

func (m *mockRunner) GenerateScripts(ctx context.Context, channel string, count int, extra string) ([]model.ScriptResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, channel)
	m.perCount = count
	m.mu.Unlock()

	if m.failFor[channel] {
		return nil, errors.New("provider unavailable")
	}

	scripts := make([]model.ScriptResult, count)
	for i := range scripts {
		scripts[i] = model.ScriptResult{Script: fmt.Sprintf("TITLE: Fact %d for %s", i+1, channel)}
	}
	return scripts, nil
}

func TestProcessChannels(t *testing.T) {
	runner := &mockRunner{}
	proc := NewBatchProcessor(runner, 2)

	channels := []string{"MovieFacts", "HorrorSecrets", "ComedyGold"}
	results := proc.ProcessChannels(context.Background(), channels, 2, "")

	if len(results) != len(channels) {
		t.Fatalf("Expected %d results, got %d", len(channels), len(results))
	}

	var got []string
	for _, r := range results {
		if r.Error != nil {
			t.Errorf("Unexpected error for %s: %v", r.Channel, r.Error)
		}
		if len(r.Scripts) != 2 {
			t.Errorf("Expected 2 scripts for %s, got %d", r.Channel, len(r.Scripts))
		}
		got = append(got, r.Channel)
	}

	sort.Strings(got)
	want := []string{"ComedyGold", "HorrorSecrets", "MovieFacts"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected channel %s, got %s", want[i], got[i])
		}
	}
}

func TestProcessChannelsPartialFailure(t *testing.T) {
	runner := &mockRunner{failFor: map[string]bool{"HorrorSecrets": true}}
	proc := NewBatchProcessor(runner, 2)

	results := proc.ProcessChannels(context.Background(), []string{"MovieFacts", "HorrorSecrets"}, 1, "")

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	failures := 0
	for _, r := range results {
		if r.GetError() != nil {
			failures++
			if r.Channel != "HorrorSecrets" {
				t.Errorf("Unexpected failing channel: %s", r.Channel)
			}
		}
	}
	if failures != 1 {
		t.Errorf("Expected 1 failure, got %d", failures)
	}
}

func TestProcessChannelsEmpty(t *testing.T) {
	proc := NewBatchProcessor(&mockRunner{}, 2)
	results := proc.ProcessChannels(context.Background(), nil, 1, "")
	if len(results) != 0 {
		t.Errorf("Expected no results for empty channel list, got %d", len(results))
	}
}

func TestReadChannelsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "channels.txt")

	content := "MovieFacts\n\n# disabled for now\nHorrorSecrets\nMovieFacts\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	channels, err := ReadChannelsFromFile(path)
	if err != nil {
		t.Fatalf("ReadChannelsFromFile failed: %v", err)
	}

	want := []string{"MovieFacts", "HorrorSecrets"}
	if len(channels) != len(want) {
		t.Fatalf("Expected %d channels, got %d: %v", len(want), len(channels), channels)
	}
	for i := range want {
		if channels[i] != want[i] {
			t.Errorf("Expected channel %s at %d, got %s", want[i], i, channels[i])
		}
	}
}

func TestReadChannelsFromFileMissing(t *testing.T) {
	if _, err := ReadChannelsFromFile("/nonexistent/channels.txt"); err == nil {
		t.Error("Expected error for missing file")
	}
}
