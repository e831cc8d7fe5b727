package levels

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Load returns the named level file, preferring an on-disk copy under
// levels/ so authored files can be edited without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(filepath.Join("levels", clean)); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}

// Names lists the embedded level files.
func Names() []string {
	entries, err := LevelsFS.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func cleanPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "levels/")
	if !strings.HasSuffix(s, ".yaml") {
		s += ".yaml"
	}
	return s
}
