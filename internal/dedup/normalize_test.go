package dedup

import "testing"

func TestNormalize_Basic(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello world"},
		{"  Spaced   out  text  ", "spaced out text"},
		{"Keep (2010) parens", "keep (2010) parens"},
		{"Dashes-and:colons.", "dashesandcolons"},
		{"", ""},
		{"   ", ""},
		{"ALREADY lower?", "already lower"},
	}

	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"In Inception (2010), he never broke character!",
		"Mixed-UP punctuation:  everywhere, really?",
		"",
		"plain text",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
