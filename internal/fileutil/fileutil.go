package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyFile streams src to dst using io.Copy with default permissions (0o644).
func CopyFile(src, dst string) error {
	return CopyFileMode(src, dst, 0o644)
}

// CopyFileMode streams src to dst, setting the given file mode on dst.
func CopyFileMode(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// ReplaceFile moves src to dst atomically. When rename crosses filesystems it
// falls back to staging a copy next to dst and renaming that, so dst is never
// observable half-written.
func ReplaceFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}

	staged := dst + ".partial"
	if err := CopyFile(src, staged); err != nil {
		_ = os.Remove(staged)
		return fmt.Errorf("stage replacement for %s: %w", dst, err)
	}
	if err := os.Rename(staged, dst); err != nil {
		_ = os.Remove(staged)
		return err
	}
	return os.Remove(src)
}

// SameSize reports whether both paths exist as regular files with equal size.
func SameSize(a, b string) bool {
	infoA, err := os.Stat(a)
	if err != nil || !infoA.Mode().IsRegular() {
		return false
	}
	infoB, err := os.Stat(b)
	if err != nil || !infoB.Mode().IsRegular() {
		return false
	}
	return infoA.Size() == infoB.Size()
}

// NonEmptyFile reports whether path exists as a regular file with size > 0.
func NonEmptyFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}

// FileSize returns the size of path, or 0 when it cannot be read.
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// EnsureDir creates dir (and parents) when missing; existing dirs are reused.
func EnsureDir(dir string) error {
	if dir == "" {
		return errors.New("directory path required")
	}
	return os.MkdirAll(dir, 0o755)
}

// BaseName returns the file name of path with its extension stripped.
func BaseName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return false
	}
	return linkErr.Err != nil && linkErr.Err.Error() == "invalid cross-device link"
}
