package dedup

import (
	"regexp"
	"strings"

	"github.com/smith505/youtube-shorts-manager/internal/model"
)

// stopWords are common function words dropped before computing content-word
// overlap.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"from": {}, "was": {}, "were": {}, "is": {}, "are": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "must": {}, "can": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "then": {}, "than": {}, "so": {}, "as": {}, "her": {},
	"his": {}, "their": {}, "our": {},
}

var (
	nonAlnum = regexp.MustCompile(`[^a-z0-9]`)
	// Naive "First Last" actor-name pattern over the raw (cased) fact.
	actorName = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)
)

// Scorer decides whether two fact strings describe the same underlying fact.
//
// No single signal is reliable on short, templated trivia sentences, so the
// verdict combines normalized equality, content-word overlap with
// category-aware thresholds, edit similarity, shared actor names, and a bank
// of phrasing heuristics. Any signal clearing its threshold settles the
// verdict.
type Scorer struct {
	cfg model.DedupConfig
}

// NewScorer creates a scorer with the given thresholds.
func NewScorer(cfg model.DedupConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// AreSimilar reports whether two facts are near-duplicates. Total on all
// string inputs; two empty facts are trivially similar.
func (s *Scorer) AreSimilar(factA, factB string) bool {
	normA := Normalize(factA)
	normB := Normalize(factB)

	// 1. Exact match after normalization
	if normA == normB {
		return true
	}

	// 2. Content-word Jaccard, tightened when both facts share a topic
	catA := Categorize(factA)
	catB := Categorize(factB)
	wordsA := keyElements(factA)
	wordsB := keyElements(factB)
	jac := jaccard(wordsA, wordsB)

	threshold := s.cfg.JaccardThreshold
	if catA == catB && catA != CategoryGeneral {
		// Within-category overlap is expected; penalize it harder.
		threshold = s.cfg.SameCategoryThreshold
	}
	if jac >= threshold && len(wordsA) > 0 && len(wordsB) > 0 {
		return true
	}

	// 3. Edit similarity over the normalized strings
	if sequenceRatio(normA, normB) >= s.cfg.SequenceThreshold {
		return true
	}

	// 4. Same named actor(s) plus any real word overlap
	namesA := actorNames(factA)
	namesB := actorNames(factB)
	if len(namesA) > 0 && setsEqual(namesA, namesB) && jac >= s.cfg.ActorOverlapThreshold {
		return true
	}

	// 5. Two weight-change facts are topically identical regardless of wording
	if matchesWeightChange(normA) && matchesWeightChange(normB) {
		return true
	}

	// 6. Near-synonymous phrasing bank with a very low overlap bar
	for _, rule := range patternRules {
		if rule.matches(normA, normB) && jac >= s.cfg.PatternOverlapThreshold {
			return true
		}
	}

	return false
}

// keyElements extracts the set of content words from a fact: lowercased
// tokens with non-alphanumerics stripped, minus stop words and tokens of
// one or two characters.
func keyElements(fact string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, token := range strings.Fields(strings.ToLower(fact)) {
		token = nonAlnum.ReplaceAllString(token, "")
		if len(token) <= 2 {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		words[token] = struct{}{}
	}
	return words
}

// jaccard computes |A∩B| / |A∪B|, defined as 0 when either set is empty.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// actorNames extracts capitalized First Last pairs from the raw fact text.
func actorNames(fact string) map[string]struct{} {
	names := make(map[string]struct{})
	for _, m := range actorName.FindAllString(fact, -1) {
		names[m] = struct{}{}
	}
	return names
}

func setsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// sequenceRatio returns an edit-similarity ratio in [0,1]: twice the total
// length of the recursively matched longest common blocks over the combined
// length of both strings. Identical strings score 1, disjoint strings 0.
func sequenceRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	total := len(a) + len(b)
	if total == 0 {
		return 1
	}
	return 2 * float64(matchedLen(a, b)) / float64(total)
}

// matchedLen sums the lengths of matching blocks: the longest common block,
// then recursively the blocks to its left and right.
func matchedLen(a, b string) int {
	i, j, size := longestBlock(a, b)
	if size == 0 {
		return 0
	}
	return size + matchedLen(a[:i], b[:j]) + matchedLen(a[i+size:], b[j+size:])
}

// longestBlock finds the longest common substring of a and b, returning its
// start offsets and length.
func longestBlock(a, b string) (int, int, int) {
	bestI, bestJ, bestSize := 0, 0, 0
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)

	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			if a[i] == b[j] {
				cur[j+1] = prev[j] + 1
				if cur[j+1] > bestSize {
					bestSize = cur[j+1]
					bestI = i - bestSize + 1
					bestJ = j - bestSize + 1
				}
			} else {
				cur[j+1] = 0
			}
		}
		prev, cur = cur, prev
	}

	return bestI, bestJ, bestSize
}
