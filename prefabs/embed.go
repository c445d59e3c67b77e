package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load returns a yaml prefab. A copy under ./prefabs on disk shadows the
// embedded one so tuning does not need a rebuild.
func Load(name string) ([]byte, error) {
	return readShadowed(PrefabsFS, trimDirs(name, "prefabs/"))
}

// LoadScript returns a zone script by file name. "arena.tengo",
// "scripts/arena.tengo" and "prefabs/scripts/arena.tengo" name the same file.
func LoadScript(name string) ([]byte, error) {
	if name == "" {
		return nil, fs.ErrNotExist
	}
	return readShadowed(ScriptsFS, "scripts/"+trimDirs(name, "prefabs/", "scripts/"))
}

func readShadowed(embedded fs.ReadFileFS, rel string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join("prefabs", filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return embedded.ReadFile(rel)
}

// trimDirs strips the leading directories in order, each at most once.
func trimDirs(name string, dirs ...string) string {
	s := filepath.ToSlash(name)
	for _, d := range dirs {
		s = strings.TrimPrefix(s, d)
	}
	return s
}
