package skyscraper

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"romshelf/internal/fileutil"
	"romshelf/internal/logging"
	"romshelf/internal/services"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onOutput func(string)) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Settings carries the external tool configuration.
type Settings struct {
	Binary                 string
	CacheDir               string
	Username               string
	Password               string
	MaxFails               int
	CacheTimeoutSeconds    int
	GenerateTimeoutSeconds int
}

// Client wraps Skyscraper CLI interactions. The tool keeps a single shared
// cache directory, so all invocations serialize on a cache-wide file lock.
type Client struct {
	settings Settings
	exec     Executor
	logger   *slog.Logger
	lock     *flock.Flock
}

// New constructs a Skyscraper client.
func New(logger *slog.Logger, settings Settings, opts ...Option) (*Client, error) {
	settings.Binary = strings.TrimSpace(settings.Binary)
	if settings.Binary == "" {
		return nil, errors.New("skyscraper binary required")
	}
	if settings.CacheDir == "" {
		return nil, errors.New("skyscraper cache directory required")
	}
	if settings.MaxFails <= 0 {
		settings.MaxFails = 3
	}
	if settings.CacheTimeoutSeconds <= 0 {
		settings.CacheTimeoutSeconds = 300
	}
	if settings.GenerateTimeoutSeconds <= 0 {
		settings.GenerateTimeoutSeconds = 180
	}
	client := &Client{
		settings: settings,
		exec:     commandExecutor{},
		logger:   logging.NewComponentLogger(logger, "skyscraper"),
		lock:     flock.New(filepath.Join(settings.CacheDir, ".romshelf.lock")),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// PlatformCacheDir returns the tool's cache subdirectory for a platform.
func (c *Client) PlatformCacheDir(scraperID string) string {
	return filepath.Join(c.settings.CacheDir, "cache", scraperID)
}

// CachePlatform runs the remote-service caching pass for a platform's ROM
// directory. The tool's own fail counter stops the pass after MaxFails
// consecutive remote misses, so one unmatched title cannot stall the build.
func (c *Client) CachePlatform(ctx context.Context, scraperID, romDir string) error {
	args := []string{
		"-p", scraperID,
		"-s", "screenscraper",
		"-i", romDir,
		"--flags", "unattend,skipped,nobrackets",
		"--verbosity", "1",
		"--maxfails", strconv.Itoa(c.settings.MaxFails),
	}
	if c.settings.Username != "" && c.settings.Password != "" {
		args = append(args, "-u", c.settings.Username+":"+c.settings.Password)
	}
	return c.run(ctx, "cache", scraperID, args, c.settings.CacheTimeoutSeconds)
}

// Generate runs an artwork-generation pass against the cached data, writing
// images and a gamelist export into genDir using the given artwork profile.
func (c *Client) Generate(ctx context.Context, scraperID, romDir, genDir, artworkPath string) error {
	args := []string{
		"-p", scraperID,
		"-i", romDir,
		"-d", c.PlatformCacheDir(scraperID),
		"-g", genDir,
		"-a", artworkPath,
		"-f", "emulationstation",
		"--flags", "unattend,nobrackets",
		"--verbosity", "0",
	}
	return c.run(ctx, "generate", scraperID, args, c.settings.GenerateTimeoutSeconds)
}

// LockCache acquires the cache-wide lock and returns its release. Holding
// the lock across a platform's cache and generation passes keeps another
// process from interleaving with the shared cache between passes.
func (c *Client) LockCache(ctx context.Context) (func(), error) {
	if err := fileutil.EnsureDir(c.settings.CacheDir); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}
	locked, err := c.lock.TryLockContext(ctx, time.Second)
	if err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "skyscraper", "lock",
			"acquire cache lock", err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrExternalTool, "skyscraper", "lock",
			"cache is locked by another process", nil)
	}
	return func() { _ = c.lock.Unlock() }, nil
}

func (c *Client) run(ctx context.Context, pass, scraperID string, args []string, timeoutSeconds int) error {
	// Callers normally hold the lock for the whole platform; a direct
	// invocation still locks for the single pass.
	if !c.lock.Locked() {
		release, err := c.LockCache(ctx)
		if err != nil {
			return err
		}
		defer release()
	}

	runCtx := ctx
	if timeoutSeconds > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSeconds)*time.Second)
		defer cancel()
	}

	c.logger.Info("running pass",
		logging.String("pass", pass),
		logging.String("platform", scraperID))

	err := c.exec.Run(runCtx, c.settings.Binary, args, func(line string) {
		c.logger.Debug("tool output",
			logging.String("platform", scraperID),
			logging.String("line", line))
	})
	if err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return services.Wrap(services.ErrTimeout, "skyscraper", pass,
				fmt.Sprintf("%s pass for %s exceeded %ds", pass, scraperID, timeoutSeconds), err)
		}
		return services.Wrap(services.ErrExternalTool, "skyscraper", pass,
			fmt.Sprintf("%s pass for %s failed", pass, scraperID), err)
	}
	return nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, onOutput func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	var wg sync.WaitGroup
	scan := func(r io.Reader) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			if onOutput != nil {
				onOutput(scanner.Text())
			} else {
				fmt.Fprintln(os.Stderr, scanner.Text())
			}
		}
	}
	wg.Add(2)
	go scan(stdout)
	go scan(stderr)
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("wait command: %w", err)
	}
	return nil
}
