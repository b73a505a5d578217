package platform

import (
	"sort"
	"strings"
)

// BIOSFile names a firmware file the handheld expects in its flat BIOS
// directory, with a human-readable label for reporting.
type BIOSFile struct {
	Name        string
	Description string
}

// Descriptor binds everything the pipeline needs to know about one platform:
// the firmware folder code, the scraping engine's platform identifier, the
// firmware catalogue name, accepted ROM extensions, the BIOS set, and an
// optional remote archive listing URL.
type Descriptor struct {
	FolderCode    string
	ScraperID     string
	CatalogueName string
	Extensions    []string
	BIOS          []BIOSFile
	ArchiveURL    string
}

// AcceptsExtension reports whether ext (with or without leading dot) is in
// the platform's accepted ROM extension set. Archive containers are accepted
// for every platform.
func (d Descriptor) AcceptsExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if ext == "" {
		return false
	}
	switch ext {
	case "zip", "7z", "rar":
		return true
	}
	for _, allowed := range d.Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Registry maps free-text system names onto complete platform descriptors.
// A system resolves only when every namespace (folder code, scraper id,
// catalogue name) is known, so a half-populated mapping can never propagate.
type Registry struct {
	aliases     map[string]string
	descriptors map[string]Descriptor
}

// NewRegistry returns the built-in registry.
func NewRegistry() *Registry {
	r := &Registry{
		aliases:     make(map[string]string),
		descriptors: make(map[string]Descriptor, len(builtins)),
	}
	for _, b := range builtins {
		r.descriptors[b.descriptor.FolderCode] = b.descriptor
		r.register(b.descriptor.FolderCode, b.descriptor.FolderCode)
		for _, alias := range b.aliases {
			r.register(alias, b.descriptor.FolderCode)
		}
	}
	return r
}

// Resolve maps a free-text system name to its descriptor.
func (r *Registry) Resolve(system string) (Descriptor, bool) {
	code, ok := r.aliases[normalizeAlias(system)]
	if !ok {
		return Descriptor{}, false
	}
	return r.descriptors[code], true
}

// ResolveFolderCode returns the descriptor for a firmware folder code.
func (r *Registry) ResolveFolderCode(code string) (Descriptor, bool) {
	d, ok := r.descriptors[strings.ToUpper(strings.TrimSpace(code))]
	return d, ok
}

// Descriptors returns all descriptors ordered by folder code.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.descriptors))
	for _, d := range r.descriptors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FolderCode < out[j].FolderCode })
	return out
}

// DetectFromPath guesses the platform for a ROM file from its path segments,
// falling back to the file extension. Returns false when neither is decisive.
func (r *Registry) DetectFromPath(segments []string, ext string) (Descriptor, bool) {
	for _, segment := range segments {
		if d, ok := r.Resolve(segment); ok {
			return d, true
		}
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if code, ok := extensionOwners[ext]; ok {
		return r.descriptors[code], true
	}
	return Descriptor{}, false
}

func (r *Registry) register(alias, code string) {
	r.aliases[normalizeAlias(alias)] = code
}

func normalizeAlias(alias string) string {
	alias = strings.ToLower(strings.TrimSpace(alias))
	alias = strings.ReplaceAll(alias, "-", " ")
	return strings.Join(strings.Fields(alias), " ")
}
