package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed sheets.yaml
var assetsFS embed.FS

// EnvDir names the environment variable holding the asset directory.
const EnvDir = "SPACERACER_ASSETS"

var ErrNotFound = errors.New("assets: file not found")

// Dir resolves the asset directory from the flag value, then the
// environment. An empty result means generated art and no sound.
func Dir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvDir)
}

// LoadFile reads an asset-relative path from dir.
func LoadFile(dir, path string) ([]byte, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(cleanAssetPath(path))))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return b, err
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
