package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"romshelf/internal/platform"
	"romshelf/internal/services"
)

func testDescriptor(t *testing.T) platform.Descriptor {
	t.Helper()
	desc, ok := platform.NewRegistry().Resolve("N64")
	if !ok {
		t.Fatal("N64 descriptor missing")
	}
	return desc
}

func fastOptions() Options {
	return Options{Retries: 2, Backoff: time.Millisecond, Timeout: 5 * time.Second, MinConfidence: 0.6}
}

func TestFetchURLDownloadsAndPlaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("rom payload"))
	}))
	defer server.Close()

	destDir := t.TempDir()
	f := New(nil, fastOptions())
	got, err := f.FetchURL(context.Background(), server.URL+"/Super%20Mario%2064%20(USA).z64", destDir, testDescriptor(t))
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(destDir, "Super Mario 64 (USA).z64")
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
	data, err := os.ReadFile(got)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "rom payload" {
		t.Errorf("content = %q", data)
	}
}

func TestFetchURLRejectsWrongExtension(t *testing.T) {
	destDir := t.TempDir()
	f := New(nil, fastOptions())
	_, err := f.FetchURL(context.Background(), "http://archive.example/game.gba", destDir, testDescriptor(t))
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	assertNoPartials(t, destDir)
}

func TestFetchURLEmptyBodyLeavesNoPartial(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	destDir := t.TempDir()
	f := New(nil, fastOptions())
	_, err := f.FetchURL(context.Background(), server.URL+"/empty.z64", destDir, testDescriptor(t))
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	assertNoPartials(t, destDir)
	if _, err := os.Stat(filepath.Join(destDir, "empty.z64")); !os.IsNotExist(err) {
		t.Error("no final file should exist after a failed validation")
	}
}

func TestFetchURLRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("eventually"))
	}))
	defer server.Close()

	f := New(nil, fastOptions())
	got, err := f.FetchURL(context.Background(), server.URL+"/game.z64", t.TempDir(), testDescriptor(t))
	if err != nil {
		t.Fatal(err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	if data, _ := os.ReadFile(got); string(data) != "eventually" {
		t.Errorf("content = %q", data)
	}
}

func TestFetchURLDoesNotRetryNotFound(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	f := New(nil, fastOptions())
	_, err := f.FetchURL(context.Background(), server.URL+"/missing.z64", t.TempDir(), testDescriptor(t))
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (404 is permanent)", attempts)
	}
}

func TestFetchURLShortCircuitsExisting(t *testing.T) {
	destDir := t.TempDir()
	existing := filepath.Join(destDir, "game.z64")
	if err := os.WriteFile(existing, []byte("already here"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := New(nil, fastOptions())
	got, err := f.FetchURL(context.Background(), "http://unreachable.invalid/game.z64", destDir, testDescriptor(t))
	if err != nil {
		t.Fatal(err)
	}
	if got != existing {
		t.Errorf("path = %q, want existing file", got)
	}
}

func TestFetchQuerySelectsBestListingCandidate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/files/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			_, _ = w.Write([]byte(`<html><body>
				<a href="Mario%20Kart%2064%20(USA).z64">Mario Kart 64 (USA).z64</a>
				<a href="Super%20Mario%2064%20(Europe).z64">Super Mario 64 (Europe).z64</a>
				<a href="Super%20Mario%2064%20(USA).z64">Super Mario 64 (USA).z64</a>
				<a href="readme.txt">readme.txt</a>
			</body></html>`))
			return
		}
		_, _ = w.Write([]byte("rom bytes"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	desc := testDescriptor(t)
	desc.ArchiveURL = server.URL + "/files/"

	f := New(nil, fastOptions())
	got, err := f.FetchQuery(context.Background(), "Super Mario 64", t.TempDir(), desc)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != "Super Mario 64 (USA).z64" {
		t.Errorf("selected %q, want the USA release", filepath.Base(got))
	}
}

func TestFetchQueryNoArchive(t *testing.T) {
	desc := testDescriptor(t)
	desc.ArchiveURL = ""
	f := New(nil, fastOptions())
	_, err := f.FetchQuery(context.Background(), "Anything", t.TempDir(), desc)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchQueryBelowThreshold(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<a href="Totally%20Unrelated%20(USA).z64">x</a>`))
	}))
	defer server.Close()

	desc := testDescriptor(t)
	desc.ArchiveURL = server.URL + "/"
	f := New(nil, fastOptions())
	_, err := f.FetchQuery(context.Background(), "Super Mario 64", t.TempDir(), desc)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func assertNoPartials(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".part") {
			t.Errorf("partial file left behind: %s", entry.Name())
		}
	}
}
