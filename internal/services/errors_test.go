package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	err := Wrap(ErrExternalTool, "scraper", "cache pass", "exit status 1", errors.New("boom"))
	if !errors.Is(err, ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool marker in %v", err)
	}
	want := "external tool error: scraper: cache pass: exit status 1: boom"
	if err.Error() != want {
		t.Fatalf("message = %q, want %q", err.Error(), want)
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := Wrap(nil, "fetch", "", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("expected ErrTransient marker in %v", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Severity
	}{
		{"nil", nil, SeverityEntry},
		{"configuration", Wrap(ErrConfiguration, "config", "validate", "", nil), SeverityFatal},
		{"external tool", Wrap(ErrExternalTool, "scraper", "box pass", "", nil), SeverityPlatform},
		{"timeout", Wrap(ErrTimeout, "scraper", "cache pass", "", nil), SeverityPlatform},
		{"deadline", fmt.Errorf("run: %w", context.DeadlineExceeded), SeverityPlatform},
		{"not found", Wrap(ErrNotFound, "locator", "match", "", nil), SeverityEntry},
		{"validation", Wrap(ErrValidation, "fetch", "extension", "", nil), SeverityEntry},
		{"plain", errors.New("plain"), SeverityEntry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}
