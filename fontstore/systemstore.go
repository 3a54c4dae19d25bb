package fontstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
)

// SystemStore serves fonts installed on the running system, located through
// the platform's font directories.
type SystemStore struct{}

// NewSystemStore creates a store over the system font directories.
func NewSystemStore() *SystemStore {
	return &SystemStore{}
}

// Load locates a system font by name and returns its bytes, or
// ErrFontNotFound if no installed font matches.
func (ss *SystemStore) Load(name string) ([]byte, error) {
	path, err := findfont.Find(name)
	if err != nil || path == "" {
		return nil, fmt.Errorf("%w: %s", ErrFontNotFound, name)
	}
	tracer().Debugf("%s is a system font: %s", name, path)
	return os.ReadFile(path)
}

// ListAvailable enumerates installed font files, resolving family and full
// names from each font's name table, the same way a directory store does.
// Unreadable or unparseable files are skipped.
func (ss *SystemStore) ListAvailable() map[string][]string {
	out := make(map[string][]string)
	for _, path := range findfont.List() {
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".ttf" && ext != ".otf" {
			continue
		}
		bytez, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		family, full, err := fontIdentity(bytez, path)
		if err != nil {
			tracer().Debugf("font listing skips unparseable %s: %v", path, err)
			continue
		}
		out[family] = append(out[family], full)
	}
	return out
}
