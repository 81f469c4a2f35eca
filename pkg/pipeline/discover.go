package pipeline

import (
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/matzehuels/depscan/pkg/manager"
)

// skipDirs are never descended into: VCS metadata and vendored trees
// contain other projects' manifests.
var skipDirs = []string{".git", ".hg", ".svn", "node_modules", "Pods", "bazel-out", "vendor"}

// Discover walks root and returns the files some manager claims, in
// lexical order. With all set, disabled managers count too.
func Discover(root string, managers []*manager.Manager, all bool) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && slices.Contains(skipDirs, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		for _, m := range managers {
			if (m.Enabled || all) && m.HasExtractor() && m.Supports(rel) {
				paths = append(paths, path)
				break
			}
		}
		return nil
	})
	return paths, err
}
