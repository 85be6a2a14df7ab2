package dedup

import (
	"regexp"
	"strings"
)

var (
	// "In <Movie> (<Year>), <fact>"
	titleWithIn = regexp.MustCompile(`^in\s+(.+?\s*\(\d{4}\)),?\s*(.+)$`)
	// Same shape without the leading "In"
	titleBare = regexp.MustCompile(`^(.+?\s*\(\d{4}\)),?\s*(.+)$`)
)

// ParseTitle splits a used-title line into its movie and fact parts. The
// year parenthetical stays attached to the movie so that a remake and the
// original count as distinct movies. A title with no recognizable
// movie-year pattern yields an empty movie and the whole lowercased title
// as the fact. Deterministic and total; never fails.
func ParseTitle(title string) (movie, fact string) {
	lower := strings.ToLower(title)

	if m := titleWithIn.FindStringSubmatch(lower); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	if m := titleBare.FindStringSubmatch(lower); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return "", strings.TrimSpace(lower)
}
