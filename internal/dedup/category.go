package dedup

import "strings"

// CategoryGeneral is the fallback category when no keyword matches. It
// disables the diversity guard and the same-category threshold tightening.
const CategoryGeneral = "general"

// categoryRule maps a topic category to the keyword substrings that select it.
type categoryRule struct {
	name     string
	keywords []string
}

// categoryRules is evaluated top to bottom; the first rule with any keyword
// present in the lowercased fact wins. Order matters: specific behaviors
// (improvisation, stunts) must outrank the broad production buckets whose
// keywords ("on set", "lines") show up in almost every fact.
var categoryRules = []categoryRule{
	{"choreography_dance", []string{"choreograph", "dance", "danced", "dancing"}},
	{"improvisation", []string{"improvis", "ad-lib", "ad lib", "adlib", "unscripted", "off-script", "off script", "made up the"}},
	{"method_acting", []string{"method act", "stayed in character", "never broke character", "remained in character", "refused to break character"}},
	{"physical_transformation", []string{"gained weight", "lost weight", "pounds", "bulked up", "slimmed down", "physical transformation", "body transformation"}},
	{"injury_accident", []string{"injur", "broke his", "broke her", "fractured", "concussion", "hospitalized", "accident", "nearly died"}},
	{"stunts_action", []string{"stunt", "did his own", "did her own", "performed his own", "performed her own"}},
	{"real_life_based", []string{"real life", "real-life", "true story", "based on", "actually happened", "really happened", "inspired by"}},
	{"casting_audition", []string{"audition", "turned down the role", "originally cast", "almost played", "was cast", "first choice", "screen test"}},
	{"director_choice", []string{"director", "insisted on", "demanded", "one take", "single take", "shot in secret"}},
	{"easter_eggs", []string{"easter egg", "hidden", "cameo", "reference to", "nod to"}},
	{"music_soundtrack", []string{"soundtrack", "composed", "theme song", "score was", "sang", "singing"}},
	{"special_effects", []string{"cgi", "special effects", "practical effects", "visual effects", "green screen", "miniature", "animatronic"}},
	{"voice_dubbing", []string{"voiced", "dubbed", "voice actor", "voice-over", "voiceover"}},
	{"costume_wardrobe", []string{"costume", "wardrobe", "outfit", "prosthetic", "makeup took"}},
	{"dialogue_script", []string{"dialogue", "rewrote", "rewritten", "the script", "screenplay", "famous line", "iconic line"}},
	{"production_behind", []string{"behind the scenes", "on set", "during filming", "production", "budget", "filmed in", "shot over"}},
	{"acting_performance", []string{"performance", "portrayal", "acted", "played the role", "starred"}},
}

// Categorize assigns a fact to the first matching topic category, or
// CategoryGeneral when nothing matches. First-match-wins and deterministic.
func Categorize(fact string) string {
	lower := strings.ToLower(fact)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.name
			}
		}
	}
	return CategoryGeneral
}
