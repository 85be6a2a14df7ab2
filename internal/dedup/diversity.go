package dedup

import (
	"fmt"
	"strings"
)

// Guard caps how many facts of the same topic category a single movie may
// accumulate. The similarity scorer compares facts pairwise; without the
// guard a movie can still collect five unrelated improvisation stories.
type Guard struct {
	maxPerMovieCategory int
}

// NewGuard creates a guard with the given per-(movie, category) cap.
func NewGuard(maxPerMovieCategory int) *Guard {
	if maxPerMovieCategory <= 0 {
		maxPerMovieCategory = 1
	}
	return &Guard{maxPerMovieCategory: maxPerMovieCategory}
}

// ShouldBlock reports whether accepting newTitle would exceed the per-movie
// topic cap, with a human-readable reason when it would. Titles with no
// recognizable movie and facts in the general category carry too little
// signal and are never blocked.
func (g *Guard) ShouldBlock(newTitle string, existing []string) (bool, string) {
	movie, fact := ParseTitle(newTitle)
	category := Categorize(fact)

	if movie == "" || category == CategoryGeneral {
		return false, ""
	}

	normMovie := Normalize(movie)
	count := 0
	for _, title := range existing {
		exMovie, exFact := ParseTitle(title)
		if exMovie == "" || Normalize(exMovie) != normMovie {
			continue
		}
		if Categorize(exFact) == category {
			count++
		}
	}

	if count >= g.maxPerMovieCategory {
		reason := fmt.Sprintf("Too many %s facts for %s",
			strings.ReplaceAll(category, "_", " "), movie)
		return true, reason
	}

	return false, ""
}
