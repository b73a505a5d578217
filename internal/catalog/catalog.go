package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformedCatalog marks catalog files whose header is unusable.
var ErrMalformedCatalog = errors.New("malformed catalog")

// Entry is one row of curated intent. Immutable once loaded.
type Entry struct {
	System              string
	Title               string
	Category            string
	Reason              string
	DescriptionOverride string
	Notes               string
	RomOverride         string
	Row                 int
}

// Result holds the loaded entries plus per-row warnings for rows that were
// skipped rather than loaded.
type Result struct {
	Entries  []Entry
	Warnings []string
}

const (
	columnSystem      = "System"
	columnTitle       = "Game Name"
	columnCategory    = "Category"
	columnReason      = "Reason"
	columnDescription = "Description"
	columnNotes       = "Notes"
	columnRomPath     = "rom_path"
)

// LoadFile reads a catalog CSV from disk.
func LoadFile(path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer file.Close()
	return Load(file)
}

// Load parses the catalog table. The header must name the System and
// Game Name columns; rows missing either value are skipped with a warning.
// Row order is preserved.
func Load(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrMalformedCatalog, err)
	}
	columns := indexColumns(header)
	if _, ok := columns[columnSystem]; !ok {
		return nil, fmt.Errorf("%w: missing required column %q", ErrMalformedCatalog, columnSystem)
	}
	if _, ok := columns[columnTitle]; !ok {
		return nil, fmt.Errorf("%w: missing required column %q", ErrMalformedCatalog, columnTitle)
	}

	result := &Result{}
	row := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: %v", row, err))
			continue
		}

		entry := Entry{
			System:              field(record, columns, columnSystem),
			Title:               field(record, columns, columnTitle),
			Category:            field(record, columns, columnCategory),
			Reason:              field(record, columns, columnReason),
			DescriptionOverride: field(record, columns, columnDescription),
			Notes:               field(record, columns, columnNotes),
			RomOverride:         field(record, columns, columnRomPath),
			Row:                 row,
		}
		if entry.System == "" || entry.Title == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: missing System or Game Name, skipped", row))
			continue
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if name == "" {
			continue
		}
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}
	return columns
}

// field returns the trimmed cell value; whitespace-only cells normalize to "".
func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
