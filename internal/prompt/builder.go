package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/smith505/youtube-shorts-manager/internal/dedup"
)

// maxFactSample bounds how many existing titles are shown to the model as
// reference material. Recent titles matter most; older ones are already
// covered by the banned-movies block.
const maxFactSample = 100

// Builder assembles generation prompts for a channel, splicing in the
// banned-movies block built from the channel's used titles.
type Builder struct {
	bannedLimit int
}

// NewBuilder creates a prompt builder. The limit caps the banned-movies block
// so a long-lived channel cannot blow the generation API's token budget.
func NewBuilder(bannedLimit int) *Builder {
	if bannedLimit <= 0 {
		bannedLimit = 200
	}
	return &Builder{bannedLimit: bannedLimit}
}

// BannedMovies extracts the distinct nonempty movie names from the existing
// titles, alphabetically sorted and truncated to the builder's limit. The
// stable truncation rule keeps prompts deterministic for a given corpus.
func (b *Builder) BannedMovies(existing []string) []string {
	seen := make(map[string]struct{})
	for _, title := range existing {
		movie, _ := dedup.ParseTitle(title)
		if movie != "" {
			seen[movie] = struct{}{}
		}
	}

	movies := make([]string, 0, len(seen))
	for movie := range seen {
		movies = append(movies, movie)
	}
	sort.Strings(movies)

	if len(movies) > b.bannedLimit {
		movies = movies[:b.bannedLimit]
	}
	return movies
}

// BannedMoviesBlock renders the banned-movies list as a labeled block
// instructing the generator not to reuse any of them. Returns an empty
// string when no movies have been used yet.
func (b *Builder) BannedMoviesBlock(existing []string) string {
	movies := b.BannedMovies(existing)
	if len(movies) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("=== BANNED MOVIES - DO NOT USE ANY OF THESE ===\n\n")
	fmt.Fprintf(&sb, "These %d movies have already been used. Each movie can only be used ONCE.\n", len(movies))
	sb.WriteString("DO NOT USE ANY OF THESE MOVIES:\n\n")
	sb.WriteString(strings.Join(movies, "\n"))
	sb.WriteString("\n\n=== END OF BANNED MOVIES LIST ===")
	return sb.String()
}

// Build assembles the full generation prompt: banned movies first, then a
// bounded sample of existing titles for reference, the hard rules, the
// channel's base prompt, and any extra per-run instructions.
func (b *Builder) Build(basePrompt string, existing []string, extra string) string {
	var sb strings.Builder

	if block := b.BannedMoviesBlock(existing); block != "" {
		sb.WriteString(block)
		sb.WriteString("\n\nExisting facts for reference:\n\n")
		sb.WriteString(strings.Join(factSample(existing), "\n"))
		sb.WriteString("\n\nCRITICAL RULES:\n")
		sb.WriteString("1. NEVER use any movie from the BANNED MOVIES list above\n")
		sb.WriteString("2. Each movie can only be used ONCE - if it's in the banned list, pick a different movie\n")
		sb.WriteString("3. Generate facts from COMPLETELY NEW movies not in the banned list\n")
		sb.WriteString("4. Focus on diverse movies from different decades and genres\n\n")
	}

	sb.WriteString(basePrompt)

	sb.WriteString("\n\nMOVIE RULES: Never reuse a movie. Each movie gets ONE fact only. " +
		"Pick something not in the banned list and mix facts from different decades (1970s-2020s).")

	if extra = strings.TrimSpace(extra); extra != "" {
		sb.WriteString("\n\n")
		sb.WriteString(extra)
	}

	return sb.String()
}

// factSample returns the most recent titles up to the sample cap. Title
// files are append-ordered, so the tail is the freshest context.
func factSample(existing []string) []string {
	if len(existing) <= maxFactSample {
		return existing
	}
	return existing[len(existing)-maxFactSample:]
}
