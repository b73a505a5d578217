package main

import (
	"bytes"
	"strings"
	"testing"

	"romshelf/internal/config"
	"romshelf/internal/pipeline"
)

func TestApplyBuildFlags(t *testing.T) {
	cfg := config.Default()
	applyBuildFlags(&cfg, buildFlags{
		romDirs:         []string{"/roms/a", "/roms/b"},
		outputDir:       "/out",
		ssUser:          "user",
		ssPass:          "pass",
		downloadMissing: true,
		noArtwork:       true,
		noCopy:          true,
	})

	if len(cfg.Paths.RomDirs) != 2 || cfg.Paths.RomDirs[0] != "/roms/a" {
		t.Errorf("rom dirs = %v", cfg.Paths.RomDirs)
	}
	if cfg.Paths.OutputDir != "/out" {
		t.Errorf("output dir = %q", cfg.Paths.OutputDir)
	}
	if cfg.Scraper.Username != "user" || cfg.Scraper.Password != "pass" {
		t.Error("credentials not applied")
	}
	if !cfg.Fetch.Enabled {
		t.Error("download flag not applied")
	}
	if cfg.Artwork.Enabled {
		t.Error("no-artwork flag not applied")
	}
	if cfg.Build.CopyRoms {
		t.Error("no-copy flag not applied")
	}
}

func TestApplyBuildFlagsLeavesConfigDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.RomDirs = []string{"/from/config"}
	applyBuildFlags(&cfg, buildFlags{})

	if len(cfg.Paths.RomDirs) != 1 || cfg.Paths.RomDirs[0] != "/from/config" {
		t.Errorf("rom dirs = %v, want config value preserved", cfg.Paths.RomDirs)
	}
	if !cfg.Artwork.Enabled || !cfg.Build.CopyRoms || cfg.Fetch.Enabled {
		t.Error("unset flags changed config defaults")
	}
}

func TestRenderReportTable(t *testing.T) {
	report := &pipeline.Report{
		Platforms: []pipeline.PlatformReport{
			{FolderCode: "N64", CatalogueName: "Nintendo N64", Resolved: 3, TextsWritten: 3, BoxImages: 2, PreviewImages: 2},
			{FolderCode: "GBA", CatalogueName: "Nintendo Game Boy Advance", Skipped: true, SkipReason: "no resolved roms"},
		},
	}
	out := renderReportTable(report)
	for _, want := range []string{"N64", "Nintendo N64", "3 roms", "skipped: no resolved roms"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestPlatformsCommand(t *testing.T) {
	cmd := newPlatformsCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"N64", "Sony PlayStation", "gba", "Arcade"} {
		if !strings.Contains(out, want) {
			t.Errorf("platform listing missing %q", want)
		}
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"build", "platforms", "config"} {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}
