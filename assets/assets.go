package assets

import (
	"embed"
	"io/fs"
	"path/filepath"
	"sort"
)

//go:embed all:levels
var levelFS embed.FS

// LevelFS exposes the embedded level data for the TMX loader.
func LevelFS() fs.FS {
	return levelFS
}

// LevelPaths returns the embedded TMX level paths in a stable order.
func LevelPaths() ([]string, error) {
	entries, err := levelFS.ReadDir("levels")
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".tmx" {
			continue
		}
		paths = append(paths, filepath.Join("levels", entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
