package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"romshelf/internal/fileutil"
	"romshelf/internal/logging"
	"romshelf/internal/platform"
	"romshelf/internal/services"
)

// Options tunes download behavior.
type Options struct {
	Retries       int
	Backoff       time.Duration
	Timeout       time.Duration
	MinConfidence float64
}

// Fetcher downloads ROM files from a remote archive. Downloads stage into a
// uniquely named temp file and move into place with an atomic rename, so a
// destination file is always either complete or absent.
type Fetcher struct {
	client *http.Client
	opts   Options
	logger *slog.Logger
}

// New constructs a fetcher; a nil logger is replaced with a no-op.
func New(logger *slog.Logger, opts Options) *Fetcher {
	if opts.Retries <= 0 {
		opts.Retries = 3
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 2 * time.Second
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 2 * time.Minute
	}
	if opts.MinConfidence <= 0 {
		opts.MinConfidence = 0.6
	}
	return &Fetcher{
		client: &http.Client{Timeout: opts.Timeout},
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "fetch"),
	}
}

// FetchURL downloads rawURL into destDir, validating the filename extension
// against the platform's accepted set and rejecting empty bodies. Returns
// the final file path. An already-present non-empty destination short-circuits
// the download.
func (f *Fetcher) FetchURL(ctx context.Context, rawURL, destDir string, desc platform.Descriptor) (string, error) {
	name, err := fileNameFromURL(rawURL)
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "fetch", "parse url", rawURL, err)
	}
	if !desc.AcceptsExtension(filepath.Ext(name)) {
		return "", services.Wrap(services.ErrValidation, "fetch", "extension check",
			fmt.Sprintf("%s is not an accepted %s ROM extension", name, desc.FolderCode), nil)
	}

	if err := fileutil.EnsureDir(destDir); err != nil {
		return "", fmt.Errorf("ensure download directory: %w", err)
	}
	final := filepath.Join(destDir, name)
	if fileutil.NonEmptyFile(final) {
		f.logger.Debug("destination already present", logging.String("file", name))
		return final, nil
	}

	if err := f.download(ctx, rawURL, final); err != nil {
		return "", err
	}
	return final, nil
}

func (f *Fetcher) download(ctx context.Context, rawURL, final string) error {
	temp := filepath.Join(filepath.Dir(final), ".romshelf-"+uuid.NewString()+".part")
	defer os.Remove(temp)

	backoff := retry.WithMaxRetries(uint64(f.opts.Retries), retry.NewExponential(f.opts.Backoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := f.downloadOnce(ctx, rawURL, temp); err != nil {
			if isTransient(err) {
				f.logger.Debug("transient download failure, retrying",
					logging.String("url", rawURL), logging.Error(err))
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return services.Wrap(services.ErrTransient, "fetch", "download", rawURL, err)
	}

	if !fileutil.NonEmptyFile(temp) {
		return services.Wrap(services.ErrValidation, "fetch", "validate download",
			fmt.Sprintf("%s produced an empty file", rawURL), nil)
	}
	if err := fileutil.ReplaceFile(temp, final); err != nil {
		return fmt.Errorf("place download: %w", err)
	}
	f.logger.Info("downloaded rom",
		logging.String("file", filepath.Base(final)),
		logging.Int64("bytes", fileutil.FileSize(final)))
	return nil
}

func (f *Fetcher) downloadOnce(ctx context.Context, rawURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return &transientError{err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= 500:
		return &transientError{fmt.Errorf("server error: %s", resp.Status)}
	default:
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		return &transientError{err}
	}
	return out.Close()
}

type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func isTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

func fileNameFromURL(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	name, err := url.PathUnescape(path.Base(parsed.Path))
	if err != nil {
		name = path.Base(parsed.Path)
	}
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("no file name in %s", rawURL)
	}
	return name, nil
}
