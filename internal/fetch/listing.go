package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"romshelf/internal/logging"
	"romshelf/internal/platform"
	"romshelf/internal/romlocate"
	"romshelf/internal/services"
)

// regionBonuses bias archive candidates toward the preferred release region.
var regionBonuses = []struct {
	tag   string
	bonus float64
}{
	{"(USA)", 1.2},
	{"(World)", 1.1},
	{"(Europe)", 1.05},
}

// FetchQuery searches the platform's archive listing for the best candidate
// matching title and downloads it into destDir. Fails with ErrNotFound when
// the platform has no archive or no candidate clears the remote threshold.
func (f *Fetcher) FetchQuery(ctx context.Context, title, destDir string, desc platform.Descriptor) (string, error) {
	if desc.ArchiveURL == "" {
		return "", services.Wrap(services.ErrNotFound, "fetch", "archive lookup",
			fmt.Sprintf("no remote archive configured for %s", desc.FolderCode), nil)
	}
	romURL, err := f.searchListing(ctx, desc.ArchiveURL, title, desc)
	if err != nil {
		return "", err
	}
	return f.FetchURL(ctx, romURL, destDir, desc)
}

// searchListing fetches the archive directory page and scores each linked
// file against the title, applying region preference. Returns the absolute
// URL of the best candidate at or above the remote confidence threshold.
func (f *Fetcher) searchListing(ctx context.Context, listingURL, title string, desc platform.Descriptor) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listingURL, nil)
	if err != nil {
		return "", fmt.Errorf("build listing request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "fetch", "archive listing", listingURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", services.Wrap(services.ErrTransient, "fetch", "archive listing",
			fmt.Sprintf("%s returned %s", listingURL, resp.Status), nil)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "fetch", "parse listing", listingURL, err)
	}
	base, err := url.Parse(listingURL)
	if err != nil {
		return "", fmt.Errorf("parse listing url: %w", err)
	}

	normalizedTitle := romlocate.Normalize(title)
	bestScore := 0.0
	bestHref := ""
	bestName := ""
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		name := decodedName(href)
		if name == "" || !desc.AcceptsExtension(path.Ext(name)) {
			return
		}
		stem := name[:len(name)-len(path.Ext(name))]
		score := romlocate.Score(normalizedTitle, romlocate.Normalize(stem))
		for _, region := range regionBonuses {
			if strings.Contains(name, region.tag) {
				score *= region.bonus
				break
			}
		}
		if score > bestScore || (score == bestScore && bestName != "" && name < bestName) {
			bestScore = score
			bestHref = href
			bestName = name
		}
	})

	if bestHref == "" || bestScore < f.opts.MinConfidence {
		return "", services.Wrap(services.ErrNotFound, "fetch", "archive search",
			fmt.Sprintf("no archive candidate for %q (best score %.2f)", title, bestScore), nil)
	}

	ref, err := url.Parse(bestHref)
	if err != nil {
		return "", fmt.Errorf("parse candidate href %q: %w", bestHref, err)
	}
	resolved := base.ResolveReference(ref).String()
	f.logger.Info("archive candidate selected",
		logging.String("title", title),
		logging.String("file", bestName),
		logging.Float64("score", bestScore))
	return resolved, nil
}

func decodedName(href string) string {
	name := path.Base(href)
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return strings.TrimSpace(name)
}
