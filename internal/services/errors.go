package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrExternalTool  = errors.New("external tool error")
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("not found")
	ErrTimeout       = errors.New("timeout")
	ErrTransient     = errors.New("transient failure")
)

// Severity classifies how far a failure is allowed to propagate.
type Severity int

const (
	// SeverityEntry failures exclude a single catalog entry and are reported.
	SeverityEntry Severity = iota
	// SeverityPlatform failures degrade or skip one platform bucket.
	SeverityPlatform
	// SeverityFatal failures abort the whole build.
	SeverityFatal
)

// Wrap builds an error message that includes pipeline context while tagging it
// with the provided marker for later severity classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Classify maps an error to the severity the pipeline should apply.
// Configuration problems abort the run; tool and timeout failures degrade the
// platform they occurred on; everything else costs at most one entry.
func Classify(err error) Severity {
	switch {
	case err == nil:
		return SeverityEntry
	case errors.Is(err, ErrConfiguration):
		return SeverityFatal
	case errors.Is(err, ErrExternalTool), errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return SeverityPlatform
	default:
		return SeverityEntry
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
