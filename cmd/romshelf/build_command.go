package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"romshelf/internal/config"
	"romshelf/internal/deps"
	"romshelf/internal/pipeline"
)

type buildFlags struct {
	romDirs         []string
	outputDir       string
	ssUser          string
	ssPass          string
	downloadMissing bool
	noArtwork       bool
	noCopy          bool
}

func newBuildCommand(configFlag *string) *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "build <catalog.csv>",
		Short: "Resolve, scrape, and assemble the output tree for a catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFlag)
			if err != nil {
				return err
			}
			applyBuildFlags(cfg, flags)
			if err := cfg.Validate(); err != nil {
				return err
			}

			statuses := deps.Check(deps.ForConfig(cfg))
			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}

			runner, err := pipeline.New(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			report, err := runner.Run(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderReportTable(report))
			fmt.Fprintf(out, "\n%d resolved, %d unresolved, %d unmapped — %d BIOS files copied\n",
				report.CountByStatus(pipeline.EntryResolved),
				report.CountByStatus(pipeline.EntryUnresolved),
				report.CountByStatus(pipeline.EntryUnmapped),
				report.BIOSCopied)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&flags.romDirs, "rom-dir", nil, "ROM source directory (repeatable)")
	cmd.Flags().StringVarP(&flags.outputDir, "output", "o", "", "Output directory for the library tree")
	cmd.Flags().StringVar(&flags.ssUser, "ss-user", "", "ScreenScraper username")
	cmd.Flags().StringVar(&flags.ssPass, "ss-pass", "", "ScreenScraper password")
	cmd.Flags().BoolVar(&flags.downloadMissing, "download-missing", false, "Download ROMs that cannot be matched locally")
	cmd.Flags().BoolVar(&flags.noArtwork, "no-artwork", false, "Skip artwork generation and normalization")
	cmd.Flags().BoolVar(&flags.noCopy, "no-copy", false, "Leave ROM files where they are instead of copying")

	return cmd
}

func applyBuildFlags(cfg *config.Config, flags buildFlags) {
	if len(flags.romDirs) > 0 {
		cfg.Paths.RomDirs = flags.romDirs
	}
	if flags.outputDir != "" {
		cfg.Paths.OutputDir = flags.outputDir
	}
	if flags.ssUser != "" {
		cfg.Scraper.Username = flags.ssUser
	}
	if flags.ssPass != "" {
		cfg.Scraper.Password = flags.ssPass
	}
	if flags.downloadMissing {
		cfg.Fetch.Enabled = true
	}
	if flags.noArtwork {
		cfg.Artwork.Enabled = false
	}
	if flags.noCopy {
		cfg.Build.CopyRoms = false
	}
}
