// Package corpus drives extraction over a directory tree of saved pages
package corpus

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// FindDocuments returns every saved leaderboard page under root, in
// lexicographic path order. Only .html and .htm files count; anything else
// in the tree is ignored.
func FindDocuments(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".html", ".htm":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}
