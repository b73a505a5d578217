package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiDim    = "\x1b[2m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
	ansiCyan   = "\x1b[36m"
)

type consoleHandler struct {
	mu     sync.Mutex
	writer io.Writer
	level  *slog.LevelVar
	attrs  []slog.Attr
	color  bool
}

func newConsoleHandler(w io.Writer, lvl *slog.LevelVar) slog.Handler {
	return &consoleHandler{writer: w, level: lvl, color: writerSupportsColor(w)}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	timestamp := record.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	var b strings.Builder
	b.WriteString(h.dim(timestamp.Format("15:04:05")))
	b.WriteByte(' ')
	b.WriteString(h.levelLabel(record.Level))
	b.WriteByte(' ')

	var component string
	rest := make([]slog.Attr, 0, record.NumAttrs()+len(h.attrs))
	for _, attr := range h.attrs {
		if attr.Key == "component" && component == "" {
			component = attr.Value.String()
			continue
		}
		rest = append(rest, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == "component" && component == "" {
			component = attr.Value.String()
			return true
		}
		rest = append(rest, attr)
		return true
	})

	if component != "" {
		b.WriteString(h.tint(ansiCyan, "["+component+"]"))
		b.WriteByte(' ')
	}
	b.WriteString(record.Message)
	for _, attr := range rest {
		b.WriteByte(' ')
		b.WriteString(h.dim(attr.Key + "=" + formatValue(attr.Value)))
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &consoleHandler{writer: h.writer, level: h.level, attrs: merged, color: h.color}
}

func (h *consoleHandler) WithGroup(string) slog.Handler { return h }

func (h *consoleHandler) levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return h.tint(ansiRed, "ERROR")
	case level >= slog.LevelWarn:
		return h.tint(ansiYellow, "WARN ")
	case level >= slog.LevelInfo:
		return "INFO "
	default:
		return h.dim("DEBUG")
	}
}

func (h *consoleHandler) tint(code, s string) string {
	if !h.color {
		return s
	}
	return code + s + ansiReset
}

func (h *consoleHandler) dim(s string) string { return h.tint(ansiDim, s) }

func formatValue(v slog.Value) string {
	v = v.Resolve()
	s := v.String()
	if strings.ContainsAny(s, " \t") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

func writerSupportsColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
