package romlocate

import (
	"path/filepath"
	"sort"
)

// Provenance records how a ROM file was obtained.
type Provenance string

const (
	ProvenanceLocal      Provenance = "matched-local"
	ProvenanceDownloaded Provenance = "downloaded"
	ProvenanceOverride   Provenance = "user-override"
)

// Match is a scored candidate selection.
type Match struct {
	Path  string
	Score float64
}

// Locator selects the local ROM file best matching a catalog title.
type Locator struct {
	// MinConfidence is the score below which no candidate is accepted.
	MinConfidence float64
}

// Locate scores every candidate path against the title (and its slash
// variants) and returns the best match at or above MinConfidence. Selection
// is deterministic: score descending, then shortest base name, then
// lexicographic base name.
func (l Locator) Locate(title string, candidates []string) (Match, bool) {
	if len(candidates) == 0 {
		return Match{}, false
	}

	variants := make([]string, 0, 3)
	for _, v := range ExpandVariants(title) {
		if n := Normalize(v); n != "" {
			variants = append(variants, n)
		}
	}
	if len(variants) == 0 {
		return Match{}, false
	}

	type scored struct {
		path  string
		base  string
		score float64
	}
	results := make([]scored, 0, len(candidates))
	for _, path := range candidates {
		base := filepath.Base(path)
		stem := Normalize(base[:len(base)-len(filepath.Ext(base))])
		best := 0.0
		for _, variant := range variants {
			if s := Score(variant, stem); s > best {
				best = s
			}
		}
		if best >= l.MinConfidence {
			results = append(results, scored{path: path, base: base, score: best})
		}
	}
	if len(results) == 0 {
		return Match{}, false
	}

	// Ties prefer the plain release: shorter file names carry fewer
	// revision/variant tags.
	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		if len(results[i].base) != len(results[j].base) {
			return len(results[i].base) < len(results[j].base)
		}
		return results[i].base < results[j].base
	})
	return Match{Path: results[0].path, Score: results[0].score}, true
}
