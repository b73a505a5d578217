package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"romshelf/internal/fileutil"
	"romshelf/internal/organizer"
	"romshelf/internal/platform"
)

// maxScanDepth bounds how far below a ROM source root the scanner descends.
const maxScanDepth = 6

// candidateIndex groups discovered ROM files by firmware folder code.
type candidateIndex map[string][]string

// scanRomDirs walks every ROM source directory and assigns each recognized
// ROM file to a platform, using directory names first and unambiguous file
// extensions second. Unreadable directories and empty files are skipped; a
// zero-byte file can never be a valid resolution.
func scanRomDirs(registry *platform.Registry, romDirs []string) candidateIndex {
	index := make(candidateIndex)
	for _, root := range romDirs {
		root = filepath.Clean(root)
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return nil
			}
			depth := len(strings.Split(rel, string(filepath.Separator)))
			if d.IsDir() {
				if depth > maxScanDepth {
					return fs.SkipDir
				}
				return nil
			}
			ext := filepath.Ext(d.Name())
			if ext == "" {
				return nil
			}
			if info, infoErr := d.Info(); infoErr != nil || info.Size() == 0 {
				return nil
			}
			segments := strings.Split(filepath.Dir(rel), string(filepath.Separator))
			desc, ok := registry.DetectFromPath(segments, ext)
			if !ok || !desc.AcceptsExtension(ext) {
				return nil
			}
			index[desc.FolderCode] = append(index[desc.FolderCode], path)
			return nil
		})
	}
	return index
}

// rescanOutputTree adds ROM files already placed under Roms/<folder_code>
// in a previous build, so re-runs match against prior placements instead of
// re-downloading.
func rescanOutputTree(index candidateIndex, tree organizer.Tree, descriptors []platform.Descriptor) {
	for _, desc := range descriptors {
		dir := tree.RomsDir(desc.FolderCode)
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if !desc.AcceptsExtension(filepath.Ext(entry.Name())) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if !fileutil.NonEmptyFile(path) {
				continue
			}
			index[desc.FolderCode] = append(index[desc.FolderCode], path)
		}
	}
}
