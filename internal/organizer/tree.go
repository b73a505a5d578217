package organizer

import (
	"fmt"
	"os"
	"path/filepath"

	"romshelf/internal/fileutil"
	"romshelf/internal/platform"
)

// Tree addresses locations inside the output directory. All paths are
// derived, never stored, so the same Tree value works across platforms.
type Tree struct {
	Root string
}

// NewTree binds a tree to the output root.
func NewTree(root string) Tree {
	return Tree{Root: root}
}

// RomsDir is where a platform's ROM files land.
func (t Tree) RomsDir(folderCode string) string {
	return filepath.Join(t.Root, "Roms", folderCode)
}

// BIOSDir is the flat firmware directory shared by all platforms.
func (t Tree) BIOSDir() string {
	return filepath.Join(t.Root, "BIOS")
}

// CatalogueDir is the per-platform metadata root.
func (t Tree) CatalogueDir(catalogueName string) string {
	return filepath.Join(t.Root, "MUOS", "info", "catalogue", catalogueName)
}

// BoxDir holds normalized box art.
func (t Tree) BoxDir(catalogueName string) string {
	return filepath.Join(t.CatalogueDir(catalogueName), "box")
}

// PreviewDir holds normalized preview screenshots.
func (t Tree) PreviewDir(catalogueName string) string {
	return filepath.Join(t.CatalogueDir(catalogueName), "preview")
}

// TextDir holds per-ROM description text files.
func (t Tree) TextDir(catalogueName string) string {
	return filepath.Join(t.CatalogueDir(catalogueName), "text")
}

// EnsureSkeleton creates the platform's directories. Existing directories
// are reused untouched, so repeated builds converge on the same tree.
func (t Tree) EnsureSkeleton(desc platform.Descriptor) error {
	dirs := []string{
		t.RomsDir(desc.FolderCode),
		t.BIOSDir(),
		t.BoxDir(desc.CatalogueName),
		t.PreviewDir(desc.CatalogueName),
		t.TextDir(desc.CatalogueName),
	}
	for _, dir := range dirs {
		if err := fileutil.EnsureDir(dir); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// GamelistPath is where the scraping tool drops its structured export.
func (t Tree) GamelistPath(catalogueName string) string {
	return filepath.Join(t.CatalogueDir(catalogueName), "gamelist.xml")
}

// generated image subdirectories the scraping tool may produce; their
// contents move into box/ or preview/ and the rest is swept away.
var generatedImageDirs = []struct {
	names  []string
	target func(Tree, string) string
}{
	{names: []string{"covers", filepath.Join("media", "covers")}, target: Tree.BoxDir},
	{names: []string{"screenshots", filepath.Join("media", "screenshots")}, target: Tree.PreviewDir},
}

// CollectGeneratedImages moves images the scraping tool wrote into its own
// layout (covers/, screenshots/, media/...) into the firmware's box/ and
// preview/ directories.
func (t Tree) CollectGeneratedImages(catalogueName string) error {
	catalogueDir := t.CatalogueDir(catalogueName)
	for _, group := range generatedImageDirs {
		destDir := group.target(t, catalogueName)
		for _, name := range group.names {
			srcDir := filepath.Join(catalogueDir, name)
			entries, err := os.ReadDir(srcDir)
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return fmt.Errorf("read %s: %w", srcDir, err)
			}
			if err := fileutil.EnsureDir(destDir); err != nil {
				return err
			}
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				src := filepath.Join(srcDir, entry.Name())
				if err := fileutil.ReplaceFile(src, filepath.Join(destDir, entry.Name())); err != nil {
					return fmt.Errorf("collect %s: %w", entry.Name(), err)
				}
			}
		}
	}
	return nil
}

// CleanArtifacts removes transient scraping-tool outputs from the catalogue
// directory so they never leak into the firmware tree.
func (t Tree) CleanArtifacts(catalogueName string) {
	catalogueDir := t.CatalogueDir(catalogueName)
	_ = os.Remove(t.GamelistPath(catalogueName))
	for _, name := range []string{"media", "covers", "screenshots", "marquees", "wheels", "videos"} {
		_ = os.RemoveAll(filepath.Join(catalogueDir, name))
	}
}
