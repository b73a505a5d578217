package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"romshelf/internal/gamelist"
)

func TestStarBar(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{0.8, "★★★★☆"},
		{0.0, "☆☆☆☆☆"},
		{1.0, "★★★★★"},
		{0.5, "★★★☆☆"},
		{0.09, "☆☆☆☆☆"},
	}
	for _, tt := range tests {
		if got := StarBar(tt.rating); got != tt.want {
			t.Errorf("StarBar(%v) = %s, want %s", tt.rating, got, tt.want)
		}
	}
}

func TestRenderFullRecord(t *testing.T) {
	games, err := gamelist.Parse(strings.NewReader(`<gameList><game>
		<path>./Super Mario 64 (USA).z64</path>
		<name>Super Mario 64</name>
		<desc>Mario's first 3D outing.</desc>
		<developer>Nintendo EAD</developer>
		<publisher>Nintendo</publisher>
		<genre>Platform</genre>
		<releasedate>19960623T000000</releasedate>
		<players>1</players>
		<rating>0.8</rating>
	</game></gameList>`))
	if err != nil {
		t.Fatal(err)
	}

	got := Render(games["Super Mario 64 (USA)"], "Super Mario 64 (USA)", "")
	want := "Super Mario 64\n" +
		"==============\n" +
		"\n" +
		"Developer: Nintendo EAD\n" +
		"Publisher: Nintendo\n" +
		"Genre: Platform\n" +
		"Year: 1996\n" +
		"Players: 1\n" +
		"Rating: ★★★★☆\n" +
		"\n" +
		"Description:\n" +
		"------------\n" +
		"Mario's first 3D outing.\n"
	if got != want {
		t.Errorf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderMetadataWithoutDescription(t *testing.T) {
	game := parseOne(t, `<game><path>./x.gb</path><name>Tetris</name><developer>Nintendo</developer></game>`)

	got := Render(game, "x", "")
	if strings.Contains(got, "Description") {
		t.Errorf("no Description section expected:\n%s", got)
	}
	if strings.Contains(got, "No description available.") {
		t.Errorf("placeholder must be suppressed when metadata exists:\n%s", got)
	}
	if !strings.Contains(got, "Developer: Nintendo") {
		t.Errorf("developer line missing:\n%s", got)
	}
}

func TestRenderEmptyRecord(t *testing.T) {
	game := parseOne(t, `<game><path>./x.gb</path></game>`)
	if got := Render(game, "x", ""); got != "No description available.\n" {
		t.Errorf("Render = %q", got)
	}
}

func TestRenderDescriptionOverrideWins(t *testing.T) {
	game := parseOne(t, `<game><path>./x.gb</path><name>Tetris</name><desc>scraped text</desc></game>`)
	got := Render(game, "x", "curator text")
	if !strings.Contains(got, "curator text") || strings.Contains(got, "scraped text") {
		t.Errorf("override should replace scraped description:\n%s", got)
	}
}

func TestRenderNoRatingLineWhenAbsent(t *testing.T) {
	game := parseOne(t, `<game><path>./x.gb</path><name>Tetris</name><desc>d</desc></game>`)
	if strings.Contains(Render(game, "x", ""), "Rating:") {
		t.Error("absent rating must not produce a Rating line")
	}
}

func TestWriteTextsSkipsRomsAbsentFromExport(t *testing.T) {
	dir := t.TempDir()
	games, err := gamelist.Parse(strings.NewReader(`<gameList><game>
		<path>./Tetris (World).gb</path><name>Tetris</name><desc>Blocks.</desc>
	</game></gameList>`))
	if err != nil {
		t.Fatal(err)
	}

	e := NewExtractor(nil)
	written, err := e.WriteTexts(dir, []string{"Tetris (World)", "Unknown Game"}, games, nil)
	if err != nil {
		t.Fatal(err)
	}
	if written != 1 {
		t.Errorf("written = %d, want 1", written)
	}
	if _, err := os.Stat(filepath.Join(dir, "Tetris (World).txt")); err != nil {
		t.Errorf("expected text file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Unknown Game.txt")); !os.IsNotExist(err) {
		t.Error("rom absent from export must not produce a file")
	}
}

func parseOne(t *testing.T, gameXML string) gamelist.Game {
	t.Helper()
	games, err := gamelist.Parse(strings.NewReader("<gameList>" + gameXML + "</gameList>"))
	if err != nil {
		t.Fatal(err)
	}
	for _, g := range games {
		return g
	}
	t.Fatal("no game parsed")
	return gamelist.Game{}
}
