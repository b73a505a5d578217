package pipeline

import (
	"fmt"
	"os"
	"strings"
	"time"

	"romshelf/internal/romlocate"
)

// EntryStatus is the terminal state of one catalog entry.
type EntryStatus string

const (
	EntryResolved   EntryStatus = "resolved"
	EntryUnresolved EntryStatus = "unresolved"
	EntryUnmapped   EntryStatus = "unmapped"
)

// EntryReport records how one catalog row fared.
type EntryReport struct {
	Title      string
	System     string
	FolderCode string
	Status     EntryStatus
	Provenance romlocate.Provenance
	RomPath    string
	Reason     string
}

// PlatformReport summarizes one platform bucket's build.
type PlatformReport struct {
	FolderCode    string
	CatalogueName string
	Resolved      int
	Skipped       bool
	SkipReason    string
	PassFailures  []string
	TextsWritten  int
	BoxImages     int
	PreviewImages int
}

// Report is the run summary, written to build_report.txt and rendered by
// the CLI.
type Report struct {
	StartedAt       time.Time
	FinishedAt      time.Time
	CatalogWarnings []string
	Entries         []EntryReport
	Platforms       []PlatformReport
	BIOSCopied      int
}

// CountByStatus tallies entries in the given terminal state.
func (r *Report) CountByStatus(status EntryStatus) int {
	count := 0
	for _, entry := range r.Entries {
		if entry.Status == status {
			count++
		}
	}
	return count
}

// Render formats the report as plain text.
func (r *Report) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Build report — %s\n", r.FinishedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Duration: %s\n", r.FinishedAt.Sub(r.StartedAt).Round(time.Second))
	fmt.Fprintf(&b, "Entries: %d resolved, %d unresolved, %d unmapped\n",
		r.CountByStatus(EntryResolved), r.CountByStatus(EntryUnresolved), r.CountByStatus(EntryUnmapped))
	fmt.Fprintf(&b, "BIOS files copied: %d\n", r.BIOSCopied)

	if len(r.CatalogWarnings) > 0 {
		b.WriteString("\nCatalog warnings:\n")
		for _, warning := range r.CatalogWarnings {
			fmt.Fprintf(&b, "  - %s\n", warning)
		}
	}

	b.WriteString("\nPlatforms:\n")
	for _, p := range r.Platforms {
		if p.Skipped {
			fmt.Fprintf(&b, "  %s (%s): skipped — %s\n", p.FolderCode, p.CatalogueName, p.SkipReason)
			continue
		}
		fmt.Fprintf(&b, "  %s (%s): %d roms, %d texts, %d box, %d preview\n",
			p.FolderCode, p.CatalogueName, p.Resolved, p.TextsWritten, p.BoxImages, p.PreviewImages)
		for _, failure := range p.PassFailures {
			fmt.Fprintf(&b, "    pass failure: %s\n", failure)
		}
	}

	var problems []EntryReport
	for _, entry := range r.Entries {
		if entry.Status != EntryResolved {
			problems = append(problems, entry)
		}
	}
	if len(problems) > 0 {
		b.WriteString("\nUnresolved entries:\n")
		for _, entry := range problems {
			fmt.Fprintf(&b, "  %s [%s]: %s — %s\n", entry.Title, entry.System, entry.Status, entry.Reason)
		}
	}
	return b.String()
}

// WriteFile writes the rendered report to path.
func (r *Report) WriteFile(path string) error {
	return os.WriteFile(path, []byte(r.Render()), 0o644)
}
