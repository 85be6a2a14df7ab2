package dedup

import "testing"

func TestCategorize_KnownCategories(t *testing.T) {
	cases := []struct {
		fact string
		want string
	}{
		{"He improvised his lines on set", "improvisation"},
		{"She choreographed her own dance routine", "choreography_dance"},
		{"He stayed in character between takes", "method_acting"},
		{"The actor gained weight for the role", "physical_transformation"},
		{"She was hospitalized after a fall", "injury_accident"},
		{"He performed his own stunts without a double", "stunts_action"},
		{"The story is based on actual events from 1973", "real_life_based"},
		{"Three other actors turned down the role at audition", "casting_audition"},
		{"The director insisted on shooting at night", "director_choice"},
		{"There is a hidden cameo in the diner scene", "easter_eggs"},
		{"The composer sang the theme song himself", "music_soundtrack"},
		{"The creature was an animatronic, not CGI", "special_effects"},
		{"The wizard was voiced by two different actors", "voice_dubbing"},
		{"Her costume weighed forty kilograms", "costume_wardrobe"},
		{"The iconic line was added during reshoots", "dialogue_script"},
		{"The budget doubled during filming", "production_behind"},
	}

	for _, c := range cases {
		if got := Categorize(c.fact); got != c.want {
			t.Errorf("Categorize(%q) = %q, want %q", c.fact, got, c.want)
		}
	}
}

func TestCategorize_Deterministic(t *testing.T) {
	fact := "He improvised the interrogation scene"
	first := Categorize(fact)
	for i := 0; i < 10; i++ {
		if got := Categorize(fact); got != first {
			t.Fatalf("Categorize not deterministic: %q then %q", first, got)
		}
	}
}

func TestCategorize_DefaultGeneral(t *testing.T) {
	cases := []string{
		"",
		"Something nondescript about a movie",
		"The premiere ran long",
	}
	for _, fact := range cases {
		if got := Categorize(fact); got != CategoryGeneral {
			t.Errorf("Categorize(%q) = %q, want %q", fact, got, CategoryGeneral)
		}
	}
}
