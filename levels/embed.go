package levels

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.map *.yaml
var LevelsFS embed.FS

// Read returns a level file, preferring a copy under ./levels on disk over
// the embedded one. Paths that name an existing file are read as is.
func Read(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return fs.ReadFile(LevelsFS, clean)
}

// LoadMap reads and parses a level map.
func LoadMap(name string) (*Map, error) {
	data, err := Read(name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	m, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", name, err)
	}
	return m, nil
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		return after
	}
	return s
}
