package manager

import (
	"errors"
	"os"
	"path/filepath"
)

// SiblingFileName returns the path of name in the directory of packageFile.
func SiblingFileName(packageFile, name string) string {
	return filepath.Join(filepath.Dir(packageFile), name)
}

// LocalPathExists reports whether path exists on the local filesystem.
// A missing path is not an error.
func LocalPathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ExistingSiblings returns the paths of names that exist next to
// packageFile, in the order given. Failed probes are joined into the error;
// the paths found are returned regardless.
func ExistingSiblings(packageFile string, names ...string) ([]string, error) {
	var (
		found []string
		errs  []error
	)
	for _, name := range names {
		path := SiblingFileName(packageFile, name)
		ok, err := LocalPathExists(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			found = append(found, path)
		}
	}
	return found, errors.Join(errs...)
}

// LockFiles returns the manager's lock files that exist next to
// packageFile. An empty packageFile has none.
func (m *Manager) LockFiles(packageFile string) ([]string, error) {
	if packageFile == "" || len(m.LockFileNames) == 0 {
		return nil, nil
	}
	return ExistingSiblings(packageFile, m.LockFileNames...)
}
