package dedup

import "testing"

func TestParseTitle_WellFormed(t *testing.T) {
	movie, fact := ParseTitle("In Inception (2010), he never broke character")

	if movie != "inception (2010)" {
		t.Errorf("Expected movie 'inception (2010)', got %q", movie)
	}
	if fact != "he never broke character" {
		t.Errorf("Expected fact 'he never broke character', got %q", fact)
	}
}

func TestParseTitle_NoLeadingIn(t *testing.T) {
	movie, fact := ParseTitle("The Matrix (1999), the lobby scene took ten days to film")

	if movie != "the matrix (1999)" {
		t.Errorf("Expected movie 'the matrix (1999)', got %q", movie)
	}
	if fact != "the lobby scene took ten days to film" {
		t.Errorf("Expected lobby scene fact, got %q", fact)
	}
}

func TestParseTitle_Fallback(t *testing.T) {
	movie, fact := ParseTitle("He improvised the whole scene")

	if movie != "" {
		t.Errorf("Expected empty movie, got %q", movie)
	}
	if fact != "he improvised the whole scene" {
		t.Errorf("Expected whole lowercased title as fact, got %q", fact)
	}
}

func TestParseTitle_YearDistinguishesRemakes(t *testing.T) {
	movieA, _ := ParseTitle("In King Kong (1933), the ape was stop motion")
	movieB, _ := ParseTitle("In King Kong (2005), the ape was motion capture")

	if movieA == movieB {
		t.Errorf("Expected remakes to be distinct movies, both parsed as %q", movieA)
	}
}

func TestParseTitle_Empty(t *testing.T) {
	movie, fact := ParseTitle("")
	if movie != "" || fact != "" {
		t.Errorf("Expected empty results for empty input, got (%q, %q)", movie, fact)
	}
}
