package dedup

import "regexp"

// patternRule pairs two regexes covering near-synonymous phrasings of the
// same behind-the-scenes fact. A rule fires when one normalized fact matches
// A and the other matches B, checked in both orderings.
//
// The bank is configuration data, not control flow: rules can be added or
// retired without touching the scoring algorithm, and each rule is exercised
// independently by tests.
type patternRule struct {
	a, b *regexp.Regexp
}

// matches reports whether the rule fires for the pair, in either order.
func (r patternRule) matches(factA, factB string) bool {
	return (r.a.MatchString(factA) && r.b.MatchString(factB)) ||
		(r.a.MatchString(factB) && r.b.MatchString(factA))
}

var patternRules = []patternRule{
	// choreography / dancing
	{regexp.MustCompile(`choreograph\w*`), regexp.MustCompile(`(danc\w+|choreograph\w*)`)},
	// improvisation / ad-libbing / unscripted
	{regexp.MustCompile(`improvis\w*`), regexp.MustCompile(`(improvis\w*|ad[ -]?libb?\w*|unscripted|made up)`)},
	{regexp.MustCompile(`ad[ -]?libb?\w*`), regexp.MustCompile(`(unscripted|made up|off[ -]?script)`)},
	{regexp.MustCompile(`unscripted`), regexp.MustCompile(`(off[ -]?script|made up|not in the script)`)},
	// method acting / staying in character
	{regexp.MustCompile(`method act\w*`), regexp.MustCompile(`((stayed|remained) in character|never broke character)`)},
	{regexp.MustCompile(`(stayed|remained) in character`), regexp.MustCompile(`never broke character`)},
	// doing one's own stunts
	{regexp.MustCompile(`(did|performed) (his|her|their) own stunts?`), regexp.MustCompile(`(stunt\w*|no stunt double)`)},
	// on-set injuries
	{regexp.MustCompile(`(injur\w+|broke (his|her|their)|fractured|concussion)`), regexp.MustCompile(`(injur\w+|hospital\w*|broke (his|her|their)|fractured|nearly died)`)},
	// casting what-ifs
	{regexp.MustCompile(`(turned down|rejected|passed on) the (role|part)`), regexp.MustCompile(`(audition\w*|originally cast|first choice|offered the (role|part))`)},
	// based on real events
	{regexp.MustCompile(`real[ -]?(life|story|events?)`), regexp.MustCompile(`(true story|based on|actually happened|really happened)`)},
	{regexp.MustCompile(`(actually|really) happen\w*`), regexp.MustCompile(`(true story|based on|real[ -]?(life|events?))`)},
	// single-take shots
	{regexp.MustCompile(`(one|single|first) take`), regexp.MustCompile(`(one|single|first) take`)},
}

// weightChangePatterns identify physical-transformation facts. Any two facts
// that both match are treated as the same fact regardless of wording: a
// movie only has one weight-change story.
var weightChangePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(gained|lost|put on|shed|dropped)\s+.*(weight|pounds|lbs|kilos)`),
	regexp.MustCompile(`\b(weight|pounds)\b`),
}

func matchesWeightChange(fact string) bool {
	for _, p := range weightChangePatterns {
		if p.MatchString(fact) {
			return true
		}
	}
	return false
}
