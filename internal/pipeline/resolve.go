package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"romshelf/internal/catalog"
	"romshelf/internal/fileutil"
	"romshelf/internal/logging"
	"romshelf/internal/platform"
	"romshelf/internal/romlocate"
)

// entryState tracks one catalog entry through resolution and placement.
type entryState struct {
	entry      catalog.Entry
	romPath    string
	provenance romlocate.Provenance
	score      float64
	reason     string
}

func (s *entryState) resolved() bool { return s.romPath != "" }

// bucket groups the entries of one platform.
type bucket struct {
	desc    platform.Descriptor
	entries []*entryState
}

// route assigns catalog entries to platform buckets. Entries whose system
// cannot be mapped are reported and excluded. Bucket order follows folder
// code so runs are deterministic.
func (p *Pipeline) route(entries []catalog.Entry, report *Report) []*bucket {
	byCode := make(map[string]*bucket)
	for _, entry := range entries {
		desc, ok := p.registry.Resolve(entry.System)
		if !ok {
			report.Entries = append(report.Entries, EntryReport{
				Title:  entry.Title,
				System: entry.System,
				Status: EntryUnmapped,
				Reason: fmt.Sprintf("unknown system %q", entry.System),
			})
			p.logger.Warn("unmapped platform",
				logging.String("system", entry.System),
				logging.String("title", entry.Title))
			continue
		}
		b, ok := byCode[desc.FolderCode]
		if !ok {
			b = &bucket{desc: desc}
			byCode[desc.FolderCode] = b
		}
		b.entries = append(b.entries, &entryState{entry: entry})
	}

	buckets := make([]*bucket, 0, len(byCode))
	for _, b := range byCode {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].desc.FolderCode < buckets[j].desc.FolderCode
	})
	return buckets
}

// downloadJob is a deferred remote fetch for one entry.
type downloadJob struct {
	state *entryState
	run   func(ctx context.Context) (string, error)
}

// resolveBucket binds each entry to a local file: user override first, then
// fuzzy matching against the candidate listing, then (when enabled) a remote
// fetch. Downloads run on a bounded pool; each job writes only its own
// entry's slot.
func (p *Pipeline) resolveBucket(ctx context.Context, b *bucket, candidates []string) {
	destDir := p.tree.RomsDir(b.desc.FolderCode)
	var jobs []downloadJob

	for _, state := range b.entries {
		entry := state.entry
		if override := strings.TrimSpace(entry.RomOverride); override != "" {
			if isRemoteURL(override) {
				if p.fetcher == nil {
					state.reason = "rom override is a URL but downloads are disabled"
					continue
				}
				jobs = append(jobs, downloadJob{state: state, run: func(ctx context.Context) (string, error) {
					return p.fetcher.FetchURL(ctx, override, destDir, b.desc)
				}})
				state.provenance = romlocate.ProvenanceOverride
				continue
			}
			path := p.resolveOverridePath(override)
			if path == "" {
				state.reason = fmt.Sprintf("rom override %q does not exist or is empty", override)
				continue
			}
			state.romPath = path
			state.provenance = romlocate.ProvenanceOverride
			state.score = 1
			continue
		}

		if match, ok := p.locator.Locate(entry.Title, candidates); ok {
			// The candidate listing may have gone stale since the scan;
			// a missing or emptied file falls through to the fetcher.
			if fileutil.NonEmptyFile(match.Path) {
				state.romPath = match.Path
				state.provenance = romlocate.ProvenanceLocal
				state.score = match.Score
				continue
			}
		}

		if p.fetcher == nil {
			state.reason = "no local candidate above the confidence threshold"
			continue
		}
		jobs = append(jobs, downloadJob{state: state, run: func(ctx context.Context) (string, error) {
			return p.fetcher.FetchQuery(ctx, entry.Title, destDir, b.desc)
		}})
		state.provenance = romlocate.ProvenanceDownloaded
	}

	p.runDownloads(ctx, jobs)
}

// runDownloads executes fetch jobs with bounded concurrency. Each job owns
// its entry's state, so no lock is needed beyond the semaphore.
func (p *Pipeline) runDownloads(ctx context.Context, jobs []downloadJob) {
	if len(jobs) == 0 {
		return
	}
	concurrency := p.cfg.Fetch.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func(job downloadJob) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			path, err := job.run(ctx)
			if err != nil {
				job.state.provenance = ""
				job.state.reason = err.Error()
				p.logger.Warn("download failed",
					logging.String("title", job.state.entry.Title),
					logging.Error(err))
				return
			}
			job.state.romPath = path
			job.state.score = 1
		}(job)
	}
	wg.Wait()
}

// resolveOverridePath accepts absolute paths as-is and tries each ROM source
// directory for relative ones. Empty files never resolve.
func (p *Pipeline) resolveOverridePath(override string) string {
	if filepath.IsAbs(override) {
		if fileutil.NonEmptyFile(override) {
			return override
		}
		return ""
	}
	for _, dir := range p.cfg.Paths.RomDirs {
		candidate := filepath.Join(dir, override)
		if fileutil.NonEmptyFile(candidate) {
			return candidate
		}
	}
	return ""
}

func isRemoteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
