package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/smith505/youtube-shorts-manager/internal/cache"
	"github.com/smith505/youtube-shorts-manager/internal/model"
)

const (
	promptFile  = "prompt.txt"
	titlesFile  = "titles.txt"
	scriptsFile = "scripts.txt"

	scriptDivider = "\n\n========================================\n\n"
)

// FileStore persists each channel as a directory of newline-delimited text
// files under a root directory:
//
//	<dir>/<channel>/prompt.txt
//	<dir>/<channel>/titles.txt
//	<dir>/<channel>/scripts.txt
//
// titles.txt is the contract artifact: one title per line, append-only,
// blank lines ignored. Other tooling reads it directly, so the format must
// not change.
type FileStore struct {
	dir string

	snapshots cache.Cache
	ttl       time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFileStore creates a store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// WithCache enables title-snapshot caching. Appends and deletes invalidate
// the channel's snapshot, so the TTL only bounds staleness against writers
// outside this process.
func (s *FileStore) WithCache(c cache.Cache, ttl time.Duration) *FileStore {
	s.snapshots = c
	s.ttl = ttl
	return s
}

// Channels lists all channels in name order.
func (s *FileStore) Channels() ([]model.Channel, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read store dir: %w", err)
	}

	var channels []model.Channel
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		prompt, err := s.Prompt(entry.Name())
		if err != nil {
			return nil, err
		}
		channels = append(channels, model.Channel{Name: entry.Name(), Prompt: prompt})
	}

	sort.Slice(channels, func(i, j int) bool { return channels[i].Name < channels[j].Name })
	return channels, nil
}

// AddChannel creates a channel directory with its base prompt. Adding an
// existing channel fails rather than overwriting its prompt.
func (s *FileStore) AddChannel(name, prompt string) error {
	if err := validateName(name); err != nil {
		return err
	}

	dir := filepath.Join(s.dir, name)
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("channel already exists: %s", name)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create channel dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, promptFile), []byte(prompt), 0644); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}
	return nil
}

// Prompt returns the channel's base generation prompt.
func (s *FileStore) Prompt(channel string) (string, error) {
	if err := s.requireChannel(channel); err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, channel, promptFile))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read prompt: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SetPrompt replaces the channel's base prompt.
func (s *FileStore) SetPrompt(channel, prompt string) error {
	if err := s.requireChannel(channel); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, channel, promptFile), []byte(prompt), 0644); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}
	return nil
}

// Titles returns the channel's used titles in file order, blank lines
// dropped. The returned slice is a snapshot owned by the caller.
func (s *FileStore) Titles(channel string) ([]string, error) {
	if err := s.requireChannel(channel); err != nil {
		return nil, err
	}

	key := cache.TitlesKey(channel)
	if s.snapshots != nil {
		if data, found := s.snapshots.Get(key); found {
			var titles []string
			if err := json.Unmarshal(data, &titles); err == nil {
				return titles, nil
			}
			// Corrupt snapshot: fall through to the file.
			_ = s.snapshots.Delete(key)
		}
	}

	titles, err := s.readTitles(channel)
	if err != nil {
		return nil, err
	}

	if s.snapshots != nil {
		if data, err := json.Marshal(titles); err == nil {
			_ = s.snapshots.Set(key, data, s.ttl)
		}
	}
	return titles, nil
}

// AppendTitles appends accepted titles, one per line. Embedded newlines are
// flattened so a title can never span lines in the contract file.
func (s *FileStore) AppendTitles(channel string, titles []string) error {
	if err := s.requireChannel(channel); err != nil {
		return err
	}
	if len(titles) == 0 {
		return nil
	}

	f, err := os.OpenFile(filepath.Join(s.dir, channel, titlesFile),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open titles file: %w", err)
	}
	defer func() { _ = f.Close() }()

	for _, title := range titles {
		title = strings.Join(strings.Fields(title), " ")
		if title == "" {
			continue
		}
		if _, err := fmt.Fprintln(f, title); err != nil {
			return fmt.Errorf("append title: %w", err)
		}
	}

	s.invalidate(channel)
	return nil
}

// DeleteTitle removes every line exactly matching title. Deletion is an
// explicit admin action; titles are otherwise append-only.
func (s *FileStore) DeleteTitle(channel, title string) error {
	if err := s.requireChannel(channel); err != nil {
		return err
	}

	titles, err := s.readTitles(channel)
	if err != nil {
		return err
	}

	kept := titles[:0]
	removed := false
	for _, t := range titles {
		if t == title {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	if !removed {
		return fmt.Errorf("title not found in %s: %s", channel, title)
	}

	return s.writeTitles(channel, kept)
}

// ClearTitles empties the channel's used-title list.
func (s *FileStore) ClearTitles(channel string) error {
	if err := s.requireChannel(channel); err != nil {
		return err
	}
	return s.writeTitles(channel, nil)
}

// AppendScript appends a saved script with a divider.
func (s *FileStore) AppendScript(channel, script string) error {
	if err := s.requireChannel(channel); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(s.dir, channel, scriptsFile),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open scripts file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(strings.TrimSpace(script) + scriptDivider); err != nil {
		return fmt.Errorf("append script: %w", err)
	}
	return nil
}

// WithLock serializes read-modify-write cycles per channel.
func (s *FileStore) WithLock(channel string, fn func() error) error {
	lock := s.channelLock(channel)
	lock.Lock()
	defer lock.Unlock()
	return fn()
}

func (s *FileStore) channelLock(channel string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[channel]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[channel] = lock
	}
	return lock
}

func (s *FileStore) readTitles(channel string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, channel, titlesFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read titles: %w", err)
	}

	var titles []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			titles = append(titles, line)
		}
	}
	return titles, nil
}

func (s *FileStore) writeTitles(channel string, titles []string) error {
	var sb strings.Builder
	for _, t := range titles {
		sb.WriteString(t)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(filepath.Join(s.dir, channel, titlesFile), []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write titles: %w", err)
	}
	s.invalidate(channel)
	return nil
}

func (s *FileStore) invalidate(channel string) {
	if s.snapshots != nil {
		_ = s.snapshots.Delete(cache.TitlesKey(channel))
	}
}

func (s *FileStore) requireChannel(channel string) error {
	if err := validateName(channel); err != nil {
		return err
	}
	if _, err := os.Stat(filepath.Join(s.dir, channel)); err != nil {
		return fmt.Errorf("%w: %s", ErrChannelNotFound, channel)
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("channel name is empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid channel name: %s", name)
	}
	return nil
}
