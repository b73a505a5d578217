package organizer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"romshelf/internal/fileutil"
	"romshelf/internal/logging"
	"romshelf/internal/platform"
)

// PlaceOptions tunes how resolved ROM files enter the output tree.
type PlaceOptions struct {
	CopyRoms bool
	// Files at or above this size are symlinked instead of copied.
	// Zero disables symlinking.
	SymlinkThresholdBytes int64
}

// Placer copies resolved ROM and BIOS files into the output tree.
type Placer struct {
	tree   Tree
	opts   PlaceOptions
	logger *slog.Logger
}

// NewPlacer constructs a placer; a nil logger is replaced with a no-op.
func NewPlacer(logger *slog.Logger, tree Tree, opts PlaceOptions) *Placer {
	return &Placer{
		tree:   tree,
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "organizer"),
	}
}

// PlaceROM puts src into Roms/<folderCode>/. A destination already present
// with the same size is left alone. Large files become symlinks when a
// threshold is set. Returns the destination path, or the source path when
// ROM copying is disabled.
func (p *Placer) PlaceROM(src, folderCode string) (string, error) {
	if !p.opts.CopyRoms {
		return src, nil
	}
	dest := filepath.Join(p.tree.RomsDir(folderCode), filepath.Base(src))
	if fileutil.SameSize(src, dest) {
		p.logger.Debug("rom already placed", logging.String("file", filepath.Base(dest)))
		return dest, nil
	}

	size := fileutil.FileSize(src)
	if p.opts.SymlinkThresholdBytes > 0 && size >= p.opts.SymlinkThresholdBytes {
		if err := replaceSymlink(src, dest); err != nil {
			return "", fmt.Errorf("symlink rom: %w", err)
		}
		p.logger.Info("linked large rom",
			logging.String("file", filepath.Base(dest)),
			logging.Int64("bytes", size))
		return dest, nil
	}

	if err := fileutil.EnsureDir(filepath.Dir(dest)); err != nil {
		return "", err
	}
	if err := copyAtomic(src, dest); err != nil {
		return "", fmt.Errorf("copy rom: %w", err)
	}
	p.logger.Info("placed rom",
		logging.String("file", filepath.Base(dest)),
		logging.Int64("bytes", size))
	return dest, nil
}

// CopyBIOS scans the ROM source directories for each platform's expected
// firmware files and copies matches into the flat BIOS directory. Files
// already present with the same size are skipped. Returns the number of
// files copied.
func (p *Placer) CopyBIOS(romDirs []string, descriptors []platform.Descriptor) (int, error) {
	wanted := make(map[string]struct{})
	for _, desc := range descriptors {
		for _, bios := range desc.BIOS {
			wanted[bios.Name] = struct{}{}
		}
	}
	if len(wanted) == 0 {
		return 0, nil
	}

	biosDir := p.tree.BIOSDir()
	if err := fileutil.EnsureDir(biosDir); err != nil {
		return 0, err
	}

	copied := 0
	for name := range wanted {
		src := p.findBIOS(romDirs, name)
		if src == "" {
			continue
		}
		dest := filepath.Join(biosDir, name)
		if fileutil.SameSize(src, dest) {
			continue
		}
		if err := copyAtomic(src, dest); err != nil {
			p.logger.Warn("bios copy failed",
				logging.String("file", name), logging.Error(err))
			continue
		}
		p.logger.Info("copied bios", logging.String("file", name))
		copied++
	}
	return copied, nil
}

func (p *Placer) findBIOS(romDirs []string, name string) string {
	for _, dir := range romDirs {
		matches, err := doublestar.FilepathGlob(filepath.Join(dir, "**", name))
		if err != nil || len(matches) == 0 {
			continue
		}
		for _, match := range matches {
			if fileutil.NonEmptyFile(match) {
				return match
			}
		}
	}
	return ""
}

// copyAtomic stages next to dest and renames into place, so dest is either
// the previous file, complete, or absent.
func copyAtomic(src, dest string) error {
	temp := dest + ".partial"
	if err := fileutil.CopyFile(src, temp); err != nil {
		os.Remove(temp)
		return err
	}
	if err := os.Rename(temp, dest); err != nil {
		os.Remove(temp)
		return err
	}
	return nil
}

func replaceSymlink(src, dest string) error {
	if err := fileutil.EnsureDir(filepath.Dir(dest)); err != nil {
		return err
	}
	abs, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	if err := os.Remove(dest); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.Symlink(abs, dest)
}
