package metadata

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"romshelf/internal/gamelist"
	"romshelf/internal/logging"
)

// Extractor projects scraped records into per-ROM text files.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor constructs an extractor; a nil logger is replaced with a no-op.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logging.NewComponentLogger(logger, "metadata")}
}

// WriteTexts emits `<romBaseName>.txt` under textDir for every ROM base name
// present in the export. ROMs absent from the export produce no file.
// overrides maps ROM base names to curator-supplied description text.
// Returns the number of files written.
func (e *Extractor) WriteTexts(textDir string, romBaseNames []string, games map[string]gamelist.Game, overrides map[string]string) (int, error) {
	if err := os.MkdirAll(textDir, 0o755); err != nil {
		return 0, fmt.Errorf("ensure text directory: %w", err)
	}

	written := 0
	for _, base := range romBaseNames {
		game, ok := games[base]
		if !ok {
			e.logger.Debug("rom absent from export", logging.String("rom", base))
			continue
		}
		content := Render(game, base, overrides[base])
		path := filepath.Join(textDir, base+".txt")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			e.logger.Warn("write text file", logging.String("rom", base), logging.Error(err))
			continue
		}
		written++
	}
	return written, nil
}
