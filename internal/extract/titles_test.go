package extract

import "testing"

func TestTitles_BasicExtraction(t *testing.T) {
	content := `Here is your script.

TITLE: In Inception (2010), the hallway fight used a rotating set
HOOK: You won't believe this...
TITLE: In Jaws (1975), the shark prop rarely worked

Some closing narration.`

	titles := Titles(content)
	if len(titles) != 2 {
		t.Fatalf("Expected 2 titles, got %d: %v", len(titles), titles)
	}
	if titles[0] != "In Inception (2010), the hallway fight used a rotating set" {
		t.Errorf("Unexpected first title: %q", titles[0])
	}
	if titles[1] != "In Jaws (1975), the shark prop rarely worked" {
		t.Errorf("Unexpected second title: %q", titles[1])
	}
}

func TestTitles_SloppyPrefixes(t *testing.T) {
	content := "title: In Heat (1995), the diner scene was shot twice\n" +
		"TITLE 2. In Alien (1979), the crew reactions were genuine\n" +
		"TITLE1. In Rocky (1976), the script was written in three days\n"

	titles := Titles(content)
	if len(titles) != 3 {
		t.Fatalf("Expected 3 titles, got %d: %v", len(titles), titles)
	}
	for _, title := range titles {
		if title[0] != 'I' {
			t.Errorf("Expected list markers stripped, got %q", title)
		}
	}
}

func TestTitles_StripsShortSuffixAndShortLines(t *testing.T) {
	content := "TITLE: In Up (2009), the opening montage had no dialogue SHORT\nTITLE: x\nTITLE:\n"

	titles := Titles(content)
	if len(titles) != 1 {
		t.Fatalf("Expected 1 title, got %d: %v", len(titles), titles)
	}
	if titles[0] != "In Up (2009), the opening montage had no dialogue" {
		t.Errorf("Expected SHORT suffix stripped, got %q", titles[0])
	}
}

func TestTitles_NoTitles(t *testing.T) {
	if titles := Titles("Just prose.\nNothing labeled."); len(titles) != 0 {
		t.Errorf("Expected no titles, got %v", titles)
	}
}
