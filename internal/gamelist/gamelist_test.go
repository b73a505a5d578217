package gamelist

import (
	"strings"
	"testing"
)

const sampleExport = `<?xml version="1.0"?>
<gameList>
  <game>
    <path>./Super Mario 64 (USA).z64</path>
    <name>Super Mario 64</name>
    <desc>Mario's first 3D outing.</desc>
    <developer>Nintendo EAD</developer>
    <publisher>Nintendo</publisher>
    <genre>Platform</genre>
    <releasedate>19960623T000000</releasedate>
    <players>1</players>
    <rating>0.95</rating>
  </game>
  <game>
    <path>./Mystery Game.z64</path>
    <name>Mystery Game</name>
    <releasedate></releasedate>
    <rating></rating>
  </game>
  <game>
    <name>No Path Entry</name>
  </game>
</gameList>`

func TestParseKeysByBaseName(t *testing.T) {
	games, err := Parse(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 2 {
		t.Fatalf("games = %d, want 2 (pathless entry dropped)", len(games))
	}

	mario, ok := games["Super Mario 64 (USA)"]
	if !ok {
		t.Fatal("missing key Super Mario 64 (USA)")
	}
	if mario.Developer != "Nintendo EAD" || mario.Players != "1" {
		t.Errorf("unexpected fields: %+v", mario)
	}
}

func TestRating(t *testing.T) {
	games, err := Parse(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatal(err)
	}

	if rating, ok := games["Super Mario 64 (USA)"].Rating(); !ok || rating != 0.95 {
		t.Errorf("rating = %v, %v", rating, ok)
	}
	if _, ok := games["Mystery Game"].Rating(); ok {
		t.Error("empty rating should report absent")
	}

	out := Game{ratingRaw: "7.5"}
	if _, ok := out.Rating(); ok {
		t.Error("out-of-scale rating should report absent")
	}
}

func TestReleaseYear(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"19960623T000000", "1996"},
		{"2001", "2001"},
		{"", ""},
		{"96", ""},
		{"abcd0101", ""},
	}
	for _, tt := range tests {
		g := Game{ReleaseDate: tt.date}
		if got := g.ReleaseYear(); got != tt.want {
			t.Errorf("ReleaseYear(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse(strings.NewReader("<gameList><game>")); err == nil {
		t.Fatal("expected decode error")
	}
}
