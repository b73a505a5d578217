package artwork

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"romshelf/internal/logging"
)

// Class describes one artwork category and its firmware target resolution.
type Class struct {
	Name   string
	Width  int
	Height int
}

// Normalizer resizes raw scraped images to the firmware's fixed resolutions.
type Normalizer struct {
	logger *slog.Logger
}

// NewNormalizer constructs a normalizer; a nil logger is replaced with a no-op.
func NewNormalizer(logger *slog.Logger) *Normalizer {
	return &Normalizer{logger: logging.NewComponentLogger(logger, "artwork")}
}

// NormalizeFile resizes src into dst at the class resolution, cropping to fit
// so the aspect ratio is preserved without stretching.
func NormalizeFile(src, dst string, class Class) error {
	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("open image %s: %w", src, err)
	}
	fitted := imaging.Fill(img, class.Width, class.Height, imaging.Center, imaging.Lanczos)
	if err := imaging.Save(fitted, dst); err != nil {
		return fmt.Errorf("save image %s: %w", dst, err)
	}
	return nil
}

// NormalizeDir resizes every image in srcDir whose base name appears in
// romBases, writing `<romBaseName>.<ext>` into dstDir. A failure on one
// image is logged and does not block the rest. Returns the number of images
// written.
func (n *Normalizer) NormalizeDir(srcDir, dstDir string, class Class, romBases map[string]struct{}) (int, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read artwork directory %s: %w", srcDir, err)
	}
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return 0, fmt.Errorf("ensure artwork directory: %w", err)
	}

	written := 0
	for _, entry := range entries {
		if entry.IsDir() || !isImage(entry.Name()) {
			continue
		}
		ext := filepath.Ext(entry.Name())
		base := entry.Name()[:len(entry.Name())-len(ext)]
		if romBases != nil {
			if _, ok := romBases[base]; !ok {
				continue
			}
		}
		src := filepath.Join(srcDir, entry.Name())
		dst := filepath.Join(dstDir, base+ext)
		if err := NormalizeFile(src, dst, class); err != nil {
			n.logger.Warn("normalize image failed",
				logging.String("class", class.Name),
				logging.String("image", entry.Name()),
				logging.Error(err))
			continue
		}
		written++
	}
	return written, nil
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff":
		return true
	default:
		return false
	}
}
