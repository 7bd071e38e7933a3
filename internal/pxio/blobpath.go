package pxio

import (
	"os"
	"path/filepath"
	"strings"
)

// FindBlobPath locates the companion .MB file for dbPath: a case-insensitive
// match of the .DB base name with an .mb extension in the same directory.
// It returns ok=false, with no error, when no such file exists.
func FindBlobPath(dbPath string) (path string, ok bool, err error) {
	dir := filepath.Dir(dbPath)
	base := strings.TrimSuffix(filepath.Base(dbPath), filepath.Ext(dbPath))
	wantLower := strings.ToLower(base) + ".mb"

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false, err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.ToLower(e.Name()) == wantLower {
			return filepath.Join(dir, e.Name()), true, nil
		}
	}
	return "", false, nil
}
