package fontstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// DirStore serves fonts from a single directory of *.ttf / *.otf files.
// Names are matched case-insensitively against the full font name, the
// family name, and the file's base name. The directory is scanned once,
// lazily.
type DirStore struct {
	dir  string
	once sync.Once
	err  error
	byID map[string]string   // lowercased identifier -> file path
	fams map[string][]string // family -> member full names
}

// NewDirStore creates a store over the given directory. The directory is not
// touched until the first Load or ListAvailable call.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Load returns the bytes of the font matching name, or ErrFontNotFound.
func (ds *DirStore) Load(name string) ([]byte, error) {
	ds.once.Do(ds.scan)
	if ds.err != nil {
		return nil, fmt.Errorf("%w: %s (%v)", ErrFontNotFound, name, ds.err)
	}
	path, ok := ds.byID[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFontNotFound, name)
	}
	return os.ReadFile(path)
}

// ListAvailable enumerates the store's fonts, family → member full names.
func (ds *DirStore) ListAvailable() map[string][]string {
	ds.once.Do(ds.scan)
	out := make(map[string][]string, len(ds.fams))
	for fam, members := range ds.fams {
		out[fam] = append([]string(nil), members...)
	}
	return out
}

func (ds *DirStore) scan() {
	ds.byID = make(map[string]string)
	ds.fams = make(map[string][]string)
	entries, err := os.ReadDir(ds.dir)
	if err != nil {
		ds.err = err
		return
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	for _, fname := range names {
		ext := strings.ToLower(filepath.Ext(fname))
		if ext != ".ttf" && ext != ".otf" {
			continue
		}
		path := filepath.Join(ds.dir, fname)
		bytez, err := os.ReadFile(path)
		if err != nil {
			tracer().Infof("font store cannot read %s: %v", path, err)
			continue
		}
		family, full, err := fontIdentity(bytez, path)
		if err != nil {
			tracer().Infof("font store skips unparseable %s: %v", fname, err)
			continue
		}
		ds.fams[family] = append(ds.fams[family], full)
		base := strings.TrimSuffix(fname, filepath.Ext(fname))
		for _, id := range []string{full, family, base} {
			key := strings.ToLower(strings.TrimSpace(id))
			if _, taken := ds.byID[key]; !taken && key != "" {
				ds.byID[key] = path
			}
		}
	}
	tracer().Debugf("font store scanned %s: %d fonts", ds.dir, len(ds.fams))
}
