package extract

import (
	"regexp"
	"strings"
)

// Generated scripts label their hook line as "TITLE: ...". Models are sloppy
// about the exact shape, so the scan also accepts "TITLE " and "TITLE1."
// style prefixes and strips leading list markers from the remainder.
var leadingMarker = regexp.MustCompile(`^[\d.\-\s]+`)

// minTitleLen drops fragments like "TITLE:" followed by nothing useful.
const minTitleLen = 6

// Titles scans a generated response for title lines and returns them in
// order of appearance. It never fails; unrecognizable content yields an
// empty slice.
func Titles(content string) []string {
	var titles []string

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		upper := strings.ToUpper(line)

		var title string
		switch {
		case strings.HasPrefix(upper, "TITLE:"):
			title = strings.TrimSpace(line[6:])
		case strings.HasPrefix(upper, "TITLE "):
			title = strings.TrimSpace(line[6:])
		case strings.HasPrefix(upper, "TITLE") && len(line) > 5 && !isLetter(line[5]):
			title = strings.TrimSpace(line[5:])
		default:
			continue
		}

		title = strings.TrimSpace(strings.TrimSuffix(title, " SHORT"))
		title = strings.TrimSpace(leadingMarker.ReplaceAllString(title, ""))

		if len(title) >= minTitleLen {
			titles = append(titles, title)
		}
	}

	return titles
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
