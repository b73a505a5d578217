// Package deps verifies the external binaries a build needs before it starts.
package deps

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"romshelf/internal/config"
)

// Requirement names an external binary the build pipeline invokes.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of one requirement.
type Status struct {
	Requirement
	Available bool
	Detail    string
}

// ForConfig returns the requirements implied by the configuration.
func ForConfig(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "Skyscraper",
			Command:     cfg.Scraper.Binary,
			Description: "scraping engine for artwork and metadata",
		},
	}
}

// Check evaluates each requirement. Absolute paths are checked directly;
// bare names are resolved through PATH.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		command := strings.TrimSpace(req.Command)
		status := Status{Requirement: req}
		status.Command = command
		switch {
		case command == "":
			status.Detail = "command not configured"
		case filepath.IsAbs(command):
			if _, err := exec.LookPath(command); err != nil {
				status.Detail = fmt.Sprintf("binary %s not found or not executable", command)
			} else {
				status.Available = true
			}
		default:
			if _, err := exec.LookPath(command); err != nil {
				status.Detail = fmt.Sprintf("binary %q not found in PATH", command)
			} else {
				status.Available = true
			}
		}
		results = append(results, status)
	}
	return results
}

// MissingRequired returns the names of unavailable non-optional requirements.
func MissingRequired(statuses []Status) []string {
	var missing []string
	for _, status := range statuses {
		if !status.Available && !status.Optional {
			missing = append(missing, status.Name)
		}
	}
	return missing
}
