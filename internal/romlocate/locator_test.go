package romlocate

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Super Mario 64 (USA)", "super mario 64"},
		{"Legend of Zelda, The [!]", "legend zelda"},
		{"Castlevania: Symphony of the Night", "castlevania symphony night"},
		{"Pokémon Stadium", "pokemon stadium"},
		{"Kirby's Dream Land", "kirbys dream land"},
		{"Sonic & Knuckles", "sonic and knuckles"},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeStripsAllTagStyles(t *testing.T) {
	got := Normalize("Tetris (World) [Rev A] {beta}")
	if got != "tetris" {
		t.Errorf("Normalize = %q, want %q", got, "tetris")
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		title     string
		candidate string
		want      float64
	}{
		{"super mario 64", "super mario 64", 1.0},
		{"super mario 64", "super mario 64 rumble edition", 0.9},
		{"mario", "super mario 64", 0.8},
		{"apple banana", "cherry durian", 0},
		{"", "anything", 0},
	}
	for _, tt := range tests {
		if got := Score(tt.title, tt.candidate); got != tt.want {
			t.Errorf("Score(%q, %q) = %v, want %v", tt.title, tt.candidate, got, tt.want)
		}
	}
}

func TestScoreTokenOverlap(t *testing.T) {
	got := Score("mega man 2", "mega man ii anniversary")
	if got <= 0 || got >= 0.7 {
		t.Errorf("token overlap score = %v, want in (0, 0.7)", got)
	}
}

func TestLocateExactAfterNormalization(t *testing.T) {
	l := Locator{MinConfidence: 0.5}
	candidates := []string{
		"/roms/N64/Mario Kart 64 (USA).z64",
		"/roms/N64/Super Mario 64 (USA).z64",
		"/roms/N64/Super Smash Bros. (USA).z64",
	}
	match, ok := l.Locate("Super Mario 64", candidates)
	if !ok {
		t.Fatal("expected a match")
	}
	if match.Path != "/roms/N64/Super Mario 64 (USA).z64" {
		t.Errorf("match = %q", match.Path)
	}
	if match.Score != 1.0 {
		t.Errorf("score = %v, want 1.0", match.Score)
	}
}

func TestLocateTieBreakPrefersShortest(t *testing.T) {
	l := Locator{MinConfidence: 0.5}
	candidates := []string{
		"/roms/Super Mario 64 (USA) (Rev 2).z64",
		"/roms/Super Mario 64 (USA).z64",
	}
	match, ok := l.Locate("Super Mario 64", candidates)
	if !ok {
		t.Fatal("expected a match")
	}
	if match.Path != "/roms/Super Mario 64 (USA).z64" {
		t.Errorf("tie should pick plain release, got %q", match.Path)
	}
}

func TestLocateDeterministic(t *testing.T) {
	l := Locator{MinConfidence: 0.5}
	candidates := []string{"/a/Tetris (USA).gb", "/b/Tetris (JPN).gb"}
	reversed := []string{"/b/Tetris (JPN).gb", "/a/Tetris (USA).gb"}

	first, _ := l.Locate("Tetris", candidates)
	second, _ := l.Locate("Tetris", reversed)
	if first.Path != second.Path {
		t.Errorf("candidate order changed the result: %q vs %q", first.Path, second.Path)
	}
}

func TestLocateBelowThreshold(t *testing.T) {
	l := Locator{MinConfidence: 0.5}
	if _, ok := l.Locate("Chrono Trigger", []string{"/roms/Completely Different Game.sfc"}); ok {
		t.Error("low-scoring candidate should not match")
	}
}

func TestLocateSlashVariants(t *testing.T) {
	l := Locator{MinConfidence: 0.5}
	candidates := []string{"/roms/GB/Pokemon - Blue Version (USA).gb"}
	match, ok := l.Locate("Pokemon Red/Blue", candidates)
	if !ok {
		t.Fatal("slash variant should match the blue version")
	}
	if match.Path != candidates[0] {
		t.Errorf("match = %q", match.Path)
	}
}

func TestExpandVariants(t *testing.T) {
	got := ExpandVariants("Pokemon Red/Blue")
	want := []string{"Pokemon Red", "Pokemon Blue", "Pokemon Red/Blue"}
	if len(got) != len(want) {
		t.Fatalf("variants = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("variant %d = %q, want %q", i, got[i], want[i])
		}
	}

	plain := ExpandVariants("Tetris")
	if len(plain) != 1 || plain[0] != "Tetris" {
		t.Errorf("plain title variants = %v", plain)
	}
}
