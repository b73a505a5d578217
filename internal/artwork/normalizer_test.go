package artwork

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var boxClass = Class{Name: "box", Width: 320, Height: 240}

func writeTestImage(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 64, A: 255})
		}
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatal(err)
	}
}

func TestNormalizeFileCropsToTarget(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "cover.png")
	dst := filepath.Join(dir, "out.png")
	writeTestImage(t, src, 640, 640)

	if err := NormalizeFile(src, dst, boxClass); err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(dst)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("output = %dx%d, want 320x240", cfg.Width, cfg.Height)
	}
}

func TestNormalizeDirFiltersAndSurvivesBadImages(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	writeTestImage(t, filepath.Join(srcDir, "Tetris (World).png"), 100, 150)
	writeTestImage(t, filepath.Join(srcDir, "Not In Bucket.png"), 100, 150)
	if err := os.WriteFile(filepath.Join(srcDir, "Corrupt (USA).png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	bases := map[string]struct{}{
		"Tetris (World)": {},
		"Corrupt (USA)":  {},
	}
	n := NewNormalizer(nil)
	written, err := n.NormalizeDir(srcDir, dstDir, boxClass, bases)
	if err != nil {
		t.Fatal(err)
	}
	if written != 1 {
		t.Errorf("written = %d, want 1", written)
	}
	if _, err := os.Stat(filepath.Join(dstDir, "Tetris (World).png")); err != nil {
		t.Errorf("expected normalized image: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dstDir, "Not In Bucket.png")); !os.IsNotExist(err) {
		t.Error("image outside the bucket should be skipped")
	}
}

func TestNormalizeDirMissingSource(t *testing.T) {
	n := NewNormalizer(nil)
	written, err := n.NormalizeDir(filepath.Join(t.TempDir(), "nope"), t.TempDir(), boxClass, nil)
	if err != nil {
		t.Fatal(err)
	}
	if written != 0 {
		t.Errorf("written = %d, want 0", written)
	}
}
