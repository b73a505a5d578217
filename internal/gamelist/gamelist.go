package gamelist

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Game is one scraped record from the structured export.
type Game struct {
	Path        string
	Name        string
	Description string
	Developer   string
	Publisher   string
	Genre       string
	ReleaseDate string
	Players     string
	ratingRaw   string
}

// Rating returns the scraped rating on a 0.0-1.0 scale, and whether one was
// present and parseable.
func (g Game) Rating() (float64, bool) {
	raw := strings.TrimSpace(g.ratingRaw)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 || value > 1 {
		return 0, false
	}
	return value, true
}

// ReleaseYear returns the four-digit year prefix of the release date, or ""
// when absent or malformed.
func (g Game) ReleaseYear() string {
	date := strings.TrimSpace(g.ReleaseDate)
	if len(date) < 4 {
		return ""
	}
	year := date[:4]
	for _, r := range year {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return year
}

type xmlGame struct {
	Path        string `xml:"path"`
	Name        string `xml:"name"`
	Description string `xml:"desc"`
	Developer   string `xml:"developer"`
	Publisher   string `xml:"publisher"`
	Genre       string `xml:"genre"`
	ReleaseDate string `xml:"releasedate"`
	Players     string `xml:"players"`
	Rating      string `xml:"rating"`
}

type xmlGameList struct {
	XMLName xml.Name  `xml:"gameList"`
	Games   []xmlGame `xml:"game"`
}

// Parse decodes a structured export, returning records keyed by ROM base
// filename (extension stripped). Records without a path are dropped.
func Parse(r io.Reader) (map[string]Game, error) {
	var doc xmlGameList
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode gamelist: %w", err)
	}

	games := make(map[string]Game, len(doc.Games))
	for _, g := range doc.Games {
		path := strings.TrimSpace(g.Path)
		if path == "" {
			continue
		}
		base := filepath.Base(path)
		key := base[:len(base)-len(filepath.Ext(base))]
		games[key] = Game{
			Path:        path,
			Name:        strings.TrimSpace(g.Name),
			Description: strings.TrimSpace(g.Description),
			Developer:   strings.TrimSpace(g.Developer),
			Publisher:   strings.TrimSpace(g.Publisher),
			Genre:       strings.TrimSpace(g.Genre),
			ReleaseDate: strings.TrimSpace(g.ReleaseDate),
			Players:     strings.TrimSpace(g.Players),
			ratingRaw:   g.Rating,
		}
	}
	return games, nil
}

// ParseFile decodes the export at path.
func ParseFile(path string) (map[string]Game, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}
