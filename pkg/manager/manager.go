package manager

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/depscan/pkg/errors"
)

// Extractor reads the dependencies declared in one manifest.
//
// content is the decoded text of the file. packageFile is its path; it is
// only used to look for sibling files such as lock files and is never parsed.
//
// Extract returns nil when the file holds nothing the manager recognises, so
// callers can skip it entirely. Whether a file with declarations but no
// usable dependency yields nil or an empty [PackageFile] is up to each
// manager. Implementations never fail: anomalies are dropped or reported
// as skipped dependencies.
type Extractor interface {
	Extract(content, packageFile string) *PackageFile
}

// ExtractorFunc adapts an ordinary function to the [Extractor] interface.
type ExtractorFunc func(content, packageFile string) *PackageFile

// Extract calls f(content, packageFile).
func (f ExtractorFunc) Extract(content, packageFile string) *PackageFile {
	return f(content, packageFile)
}

// Manager describes one manifest type: which files it owns, which
// datasources its dependencies point at and how to extract them.
type Manager struct {
	// Name is the manager identifier (e.g. "cocoapods", "ruby-version").
	Name string

	// FileMatch holds regular expressions matched against slash-separated
	// file paths. A file belongs to the manager when any pattern matches.
	FileMatch []string

	// Enabled reports whether the manager takes part in detection by default.
	Enabled bool

	// Categories are the ecosystems the manager belongs to (e.g. "swift").
	Categories []string

	// SupportedDatasources lists every datasource id the extractor may stamp.
	SupportedDatasources []string

	// LockFileNames are the lock files the tool writes next to a manifest.
	LockFileNames []string

	// Extractor reads manifests of this type. Definition-only managers
	// leave it nil.
	Extractor Extractor
}

// HasExtractor reports whether the manager can read manifests.
func (m *Manager) HasExtractor() bool {
	return m.Extractor != nil
}

// Extract runs the manager's extractor, returning nil for definition-only
// managers.
func (m *Manager) Extract(content, packageFile string) *PackageFile {
	if m.Extractor == nil {
		return nil
	}
	return m.Extractor.Extract(content, packageFile)
}

// Supports reports whether path matches one of the manager's file patterns.
// Invalid patterns never match.
func (m *Manager) Supports(path string) bool {
	p := filepath.ToSlash(path)
	for _, pattern := range m.FileMatch {
		if ok, err := regexp.MatchString(pattern, p); err == nil && ok {
			return true
		}
	}
	return false
}

// Clone returns a copy whose slices can be modified independently.
func (m *Manager) Clone() *Manager {
	c := *m
	c.FileMatch = slices.Clone(m.FileMatch)
	c.Categories = slices.Clone(m.Categories)
	c.SupportedDatasources = slices.Clone(m.SupportedDatasources)
	c.LockFileNames = slices.Clone(m.LockFileNames)
	return &c
}

// Find returns the manager with the given name, or nil.
func Find(name string, managers []*Manager) *Manager {
	for _, m := range managers {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Detect returns the first enabled manager with an extractor whose file
// patterns match path. Managers are checked in order.
func Detect(path string, managers ...*Manager) (*Manager, error) {
	for _, m := range managers {
		if m.Enabled && m.HasExtractor() && m.Supports(path) {
			return m, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported manifest: %s", filepath.Base(path))
}

// Names returns the names of the given managers in order.
func Names(managers []*Manager) []string {
	names := make([]string, len(managers))
	for i, m := range managers {
		names[i] = m.Name
	}
	return names
}

// IsText reports whether content looks like decoded text. Content with NUL
// bytes or invalid UTF-8 is treated as binary.
func IsText(content string) bool {
	return !strings.ContainsRune(content, 0) && utf8.ValidString(content)
}
