package metadata

import (
	"math"
	"strings"

	"romshelf/internal/gamelist"
)

const placeholder = "No description available."

// Render produces the per-ROM description text. The name header is underlined
// with '=' characters, known metadata fields follow, and the description (the
// override wins over the scraped text) closes the file. When nothing at all
// is known the content is the placeholder line.
func Render(game gamelist.Game, fallbackName, descriptionOverride string) string {
	name := game.Name
	if name == "" {
		name = fallbackName
	}

	description := strings.TrimSpace(descriptionOverride)
	if description == "" {
		description = strings.TrimSpace(game.Description)
	}

	fields := fieldLines(game)
	if description == "" && len(fields) == 0 {
		return placeholder + "\n"
	}

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", len([]rune(name))))
	b.WriteByte('\n')

	if len(fields) > 0 {
		b.WriteByte('\n')
		for _, line := range fields {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	if description != "" {
		b.WriteByte('\n')
		b.WriteString("Description:\n")
		b.WriteString("------------\n")
		b.WriteString(description)
		b.WriteByte('\n')
	}
	return b.String()
}

func fieldLines(game gamelist.Game) []string {
	lines := make([]string, 0, 6)
	if game.Developer != "" {
		lines = append(lines, "Developer: "+game.Developer)
	}
	if game.Publisher != "" {
		lines = append(lines, "Publisher: "+game.Publisher)
	}
	if game.Genre != "" {
		lines = append(lines, "Genre: "+game.Genre)
	}
	if year := game.ReleaseYear(); year != "" {
		lines = append(lines, "Year: "+year)
	}
	if game.Players != "" {
		lines = append(lines, "Players: "+game.Players)
	}
	if rating, ok := game.Rating(); ok {
		lines = append(lines, "Rating: "+StarBar(rating))
	}
	return lines
}

// StarBar renders a 0.0-1.0 rating as five star symbols.
func StarBar(rating float64) string {
	filled := int(math.Round(rating * 5))
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}
