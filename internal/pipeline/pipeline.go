package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"romshelf/internal/artwork"
	"romshelf/internal/catalog"
	"romshelf/internal/config"
	"romshelf/internal/fetch"
	"romshelf/internal/fileutil"
	"romshelf/internal/gamelist"
	"romshelf/internal/logging"
	"romshelf/internal/metadata"
	"romshelf/internal/organizer"
	"romshelf/internal/platform"
	"romshelf/internal/romlocate"
	"romshelf/internal/services/skyscraper"
)

// Fetcher downloads ROM files from remote archives.
type Fetcher interface {
	FetchURL(ctx context.Context, rawURL, destDir string, desc platform.Descriptor) (string, error)
	FetchQuery(ctx context.Context, title, destDir string, desc platform.Descriptor) (string, error)
}

// Scraper runs the external scraping engine's passes. LockCache guards the
// engine's shared cache for the duration of one platform's passes.
type Scraper interface {
	LockCache(ctx context.Context) (func(), error)
	CachePlatform(ctx context.Context, scraperID, romDir string) error
	Generate(ctx context.Context, scraperID, romDir, genDir, artworkPath string) error
}

// Pipeline drives a full library build: catalog to finished output tree.
type Pipeline struct {
	cfg        *config.Config
	logger     *slog.Logger
	registry   *platform.Registry
	locator    romlocate.Locator
	fetcher    Fetcher
	scraper    Scraper
	tree       organizer.Tree
	placer     *organizer.Placer
	extractor  *metadata.Extractor
	normalizer *artwork.Normalizer
}

// New wires a pipeline from configuration with real collaborators.
func New(cfg *config.Config, logger *slog.Logger) (*Pipeline, error) {
	var fetcher Fetcher
	if cfg.Fetch.Enabled {
		fetcher = fetch.New(logger, fetch.Options{
			Retries:       cfg.Fetch.Retries,
			Backoff:       time.Duration(cfg.Fetch.BackoffSeconds) * time.Second,
			Timeout:       time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
			MinConfidence: cfg.Matching.RemoteMinConfidence,
		})
	}
	scraper, err := skyscraper.New(logger, skyscraper.Settings{
		Binary:                 cfg.Scraper.Binary,
		CacheDir:               cfg.Scraper.CacheDir,
		Username:               cfg.Scraper.Username,
		Password:               cfg.Scraper.Password,
		MaxFails:               cfg.Scraper.MaxFails,
		CacheTimeoutSeconds:    cfg.Scraper.CacheTimeoutSeconds,
		GenerateTimeoutSeconds: cfg.Scraper.GenerateTimeoutSeconds,
	})
	if err != nil {
		return nil, err
	}
	return NewWithDependencies(cfg, logger, fetcher, scraper), nil
}

// NewWithDependencies allows injecting collaborators (used in tests). A nil
// fetcher disables downloads; a nil scraper skips the scraping passes.
func NewWithDependencies(cfg *config.Config, logger *slog.Logger, fetcher Fetcher, scraper Scraper) *Pipeline {
	tree := organizer.NewTree(cfg.Paths.OutputDir)
	return &Pipeline{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "pipeline"),
		registry: platform.NewRegistry(),
		locator:  romlocate.Locator{MinConfidence: cfg.Matching.MinConfidence},
		fetcher:  fetcher,
		scraper:  scraper,
		tree:     tree,
		placer: organizer.NewPlacer(logger, tree, organizer.PlaceOptions{
			CopyRoms:              cfg.Build.CopyRoms,
			SymlinkThresholdBytes: int64(cfg.Build.SymlinkThresholdGiB) << 30,
		}),
		extractor:  metadata.NewExtractor(logger),
		normalizer: artwork.NewNormalizer(logger),
	}
}

// Run executes a full build for the catalog at catalogPath. Per-entry and
// per-platform failures land in the report; only setup failures (unreadable
// catalog, unwritable output) return an error.
func (p *Pipeline) Run(ctx context.Context, catalogPath string) (*Report, error) {
	loaded, err := catalog.LoadFile(catalogPath)
	if err != nil {
		return nil, err
	}
	report := &Report{
		StartedAt:       time.Now(),
		CatalogWarnings: loaded.Warnings,
	}

	if err := fileutil.EnsureDir(p.cfg.Paths.OutputDir); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	buckets := p.route(loaded.Entries, report)
	index := scanRomDirs(p.registry, p.cfg.Paths.RomDirs)
	rescanOutputTree(index, p.tree, p.registry.Descriptors())

	for _, b := range buckets {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		p.buildPlatform(ctx, b, index[b.desc.FolderCode], report)
	}

	copied, err := p.placer.CopyBIOS(p.cfg.Paths.RomDirs, p.registry.Descriptors())
	if err != nil {
		p.logger.Warn("bios scan failed", logging.Error(err))
	}
	report.BIOSCopied = copied

	report.FinishedAt = time.Now()
	reportPath := filepath.Join(p.cfg.Paths.OutputDir, "build_report.txt")
	if err := report.WriteFile(reportPath); err != nil {
		p.logger.Warn("report write failed", logging.Error(err))
	}
	return report, nil
}

func (p *Pipeline) buildPlatform(ctx context.Context, b *bucket, candidates []string, report *Report) {
	desc := b.desc
	logger := p.logger.With(logging.String("platform", desc.FolderCode))
	logger.Info("building platform", logging.Int("entries", len(b.entries)))

	platReport := PlatformReport{FolderCode: desc.FolderCode, CatalogueName: desc.CatalogueName}

	if err := p.tree.EnsureSkeleton(desc); err != nil {
		logger.Error("skeleton creation failed", logging.Error(err))
		platReport.Skipped = true
		platReport.SkipReason = err.Error()
		p.reportEntries(b, report)
		report.Platforms = append(report.Platforms, platReport)
		return
	}

	p.resolveBucket(ctx, b, candidates)

	var placed []string
	for _, state := range b.entries {
		if !state.resolved() {
			continue
		}
		dest, err := p.placer.PlaceROM(state.romPath, desc.FolderCode)
		if err != nil {
			state.romPath = ""
			state.reason = err.Error()
			logger.Warn("rom placement failed",
				logging.String("title", state.entry.Title), logging.Error(err))
			continue
		}
		state.romPath = dest
		placed = append(placed, dest)
	}
	platReport.Resolved = len(placed)
	p.reportEntries(b, report)

	if len(placed) == 0 {
		platReport.Skipped = true
		platReport.SkipReason = "no resolved roms"
		report.Platforms = append(report.Platforms, platReport)
		return
	}

	p.scrapePlatform(ctx, b, placed, &platReport)
	report.Platforms = append(report.Platforms, platReport)
}

func (p *Pipeline) reportEntries(b *bucket, report *Report) {
	for _, state := range b.entries {
		entry := EntryReport{
			Title:      state.entry.Title,
			System:     state.entry.System,
			FolderCode: b.desc.FolderCode,
		}
		if state.resolved() {
			entry.Status = EntryResolved
			entry.Provenance = state.provenance
			entry.RomPath = state.romPath
		} else {
			entry.Status = EntryUnresolved
			entry.Reason = state.reason
		}
		report.Entries = append(report.Entries, entry)
	}
}

// scrapePlatform runs the cache pass and the two artwork-generation passes,
// then extracts metadata text and normalizes artwork. A failed pass is
// recorded and the remaining passes still run.
func (p *Pipeline) scrapePlatform(ctx context.Context, b *bucket, placed []string, platReport *PlatformReport) {
	desc := b.desc
	logger := p.logger.With(logging.String("platform", desc.FolderCode))

	if p.scraper == nil {
		platReport.PassFailures = append(platReport.PassFailures, "scraping engine unavailable")
		return
	}

	romDir, cleanup, err := p.scrapeInputDir(desc, placed)
	if err != nil {
		platReport.PassFailures = append(platReport.PassFailures, err.Error())
		return
	}
	defer cleanup()

	// The cache lock spans all of this platform's passes so another
	// process cannot interleave with the shared cache between them.
	release, err := p.scraper.LockCache(ctx)
	if err != nil {
		platReport.PassFailures = append(platReport.PassFailures, err.Error())
		return
	}
	defer release()

	if err := p.scraper.CachePlatform(ctx, desc.ScraperID, romDir); err != nil {
		logger.Warn("cache pass failed", logging.Error(err))
		platReport.PassFailures = append(platReport.PassFailures, "cache: "+err.Error())
	}

	// Generation passes always run: the structured export they produce
	// feeds text extraction even when artwork itself is disabled.
	catalogueDir := p.tree.CatalogueDir(desc.CatalogueName)
	profiles := []skyscraper.ArtworkProfile{
		skyscraper.BoxProfile(p.cfg.Artwork.BoxWidth, p.cfg.Artwork.BoxHeight),
		skyscraper.PreviewProfile(p.cfg.Artwork.PreviewWidth, p.cfg.Artwork.PreviewHeight),
	}
	if err := fileutil.EnsureDir(p.workDir()); err != nil {
		platReport.PassFailures = append(platReport.PassFailures, err.Error())
		return
	}
	for _, profile := range profiles {
		profilePath, err := skyscraper.WriteProfile(p.workDir(), profile)
		if err != nil {
			platReport.PassFailures = append(platReport.PassFailures, profile.Name+": "+err.Error())
			continue
		}
		if err := p.scraper.Generate(ctx, desc.ScraperID, romDir, catalogueDir, profilePath); err != nil {
			logger.Warn("generation pass failed",
				logging.String("profile", profile.Name), logging.Error(err))
			platReport.PassFailures = append(platReport.PassFailures, profile.Name+": "+err.Error())
		}
		if p.cfg.Artwork.Enabled {
			if err := p.tree.CollectGeneratedImages(desc.CatalogueName); err != nil {
				logger.Warn("image collection failed", logging.Error(err))
			}
		}
	}

	baseNames := make([]string, 0, len(placed))
	romBases := make(map[string]struct{}, len(placed))
	for _, path := range placed {
		base := fileutil.BaseName(path)
		baseNames = append(baseNames, base)
		romBases[base] = struct{}{}
	}

	games, err := gamelist.ParseFile(p.tree.GamelistPath(desc.CatalogueName))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("export parse failed", logging.Error(err))
			platReport.PassFailures = append(platReport.PassFailures, "export: "+err.Error())
		}
		games = nil
	}
	if games != nil {
		written, err := p.extractor.WriteTexts(
			p.tree.TextDir(desc.CatalogueName), baseNames, games, p.descriptionOverrides(b))
		if err != nil {
			logger.Warn("text generation failed", logging.Error(err))
		}
		platReport.TextsWritten = written
	}

	if p.cfg.Artwork.Enabled {
		boxDir := p.tree.BoxDir(desc.CatalogueName)
		count, err := p.normalizer.NormalizeDir(boxDir, boxDir,
			artwork.Class{Name: "box", Width: p.cfg.Artwork.BoxWidth, Height: p.cfg.Artwork.BoxHeight},
			romBases)
		if err != nil {
			logger.Warn("box normalization failed", logging.Error(err))
		}
		platReport.BoxImages = count

		previewDir := p.tree.PreviewDir(desc.CatalogueName)
		count, err = p.normalizer.NormalizeDir(previewDir, previewDir,
			artwork.Class{Name: "preview", Width: p.cfg.Artwork.PreviewWidth, Height: p.cfg.Artwork.PreviewHeight},
			romBases)
		if err != nil {
			logger.Warn("preview normalization failed", logging.Error(err))
		}
		platReport.PreviewImages = count
	}

	p.tree.CleanArtifacts(desc.CatalogueName)
}

// scrapeInputDir returns the directory the scraping engine should read. With
// ROM copying enabled that is the output Roms directory; otherwise resolved
// files are staged as symlinks under the work directory.
func (p *Pipeline) scrapeInputDir(desc platform.Descriptor, placed []string) (string, func(), error) {
	if p.cfg.Build.CopyRoms {
		return p.tree.RomsDir(desc.FolderCode), func() {}, nil
	}
	staging := filepath.Join(p.workDir(), "staging", desc.FolderCode)
	if err := os.RemoveAll(staging); err != nil {
		return "", nil, fmt.Errorf("reset staging: %w", err)
	}
	if err := fileutil.EnsureDir(staging); err != nil {
		return "", nil, err
	}
	for _, path := range placed {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", nil, err
		}
		if err := os.Symlink(abs, filepath.Join(staging, filepath.Base(path))); err != nil {
			return "", nil, fmt.Errorf("stage rom: %w", err)
		}
	}
	return staging, func() { _ = os.RemoveAll(staging) }, nil
}

func (p *Pipeline) workDir() string {
	if p.cfg.Paths.WorkDir != "" {
		return p.cfg.Paths.WorkDir
	}
	return os.TempDir()
}

func (p *Pipeline) descriptionOverrides(b *bucket) map[string]string {
	overrides := make(map[string]string)
	for _, state := range b.entries {
		if state.resolved() && state.entry.DescriptionOverride != "" {
			overrides[fileutil.BaseName(state.romPath)] = state.entry.DescriptionOverride
		}
	}
	return overrides
}
