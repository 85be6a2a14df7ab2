package dedup

import (
	"strings"

	"github.com/smith505/youtube-shorts-manager/internal/model"
)

// Filter classifies candidate titles against a channel's existing corpus.
// Classification is pure: the existing slice is never mutated and
// persistence belongs to the caller, which must serialize read-modify-write
// cycles per channel if generations run concurrently.
type Filter struct {
	scorer *Scorer
	guard  *Guard
}

// NewFilter creates a filter from the dedup configuration.
func NewFilter(cfg model.DedupConfig) *Filter {
	return &Filter{
		scorer: NewScorer(cfg),
		guard:  NewGuard(cfg.MaxPerMovieCategory),
	}
}

// Scorer exposes the underlying similarity scorer.
func (f *Filter) Scorer() *Scorer {
	return f.scorer
}

// Classify reports whether newTitle duplicates the existing corpus. When the
// verdict is duplicate, the second return value carries either the diversity
// reason or the existing title the candidate matched.
//
// Titles from the same movie are compared fact-to-fact. When either side has
// no recognizable movie, the comparison degrades to whole-title similarity
// rather than erroring.
func (f *Filter) Classify(newTitle string, existing []string) (bool, string) {
	if blocked, reason := f.guard.ShouldBlock(newTitle, existing); blocked {
		return true, reason
	}

	newMovie, newFact := ParseTitle(newTitle)

	for _, title := range existing {
		exMovie, exFact := ParseTitle(title)

		if newMovie != "" && exMovie != "" {
			if Normalize(newMovie) != Normalize(exMovie) {
				continue
			}
			if f.scorer.AreSimilar(newFact, exFact) {
				return true, title
			}
		} else if f.scorer.AreSimilar(newTitle, title) {
			return true, title
		}
	}

	return false, ""
}

// FilterBatch partitions candidates into accepted and rejected, in input
// order. Each candidate is classified against the existing corpus plus every
// candidate already accepted in this batch, so two rephrasings of the same
// fact inside one response are caught against each other. Blank candidates
// are skipped. Deterministic: identical inputs produce identical partitions.
func (f *Filter) FilterBatch(candidates, existing []string) ([]string, []model.RejectedTitle) {
	working := make([]string, len(existing), len(existing)+len(candidates))
	copy(working, existing)

	var accepted []string
	var rejected []model.RejectedTitle

	for _, title := range candidates {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}

		if dup, reason := f.Classify(title, working); dup {
			rejected = append(rejected, model.RejectedTitle{Title: title, Reason: reason})
			continue
		}

		accepted = append(accepted, title)
		working = append(working, title)
	}

	return accepted, rejected
}
