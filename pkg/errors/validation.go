package errors

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

const (
	maxPathLength        = 500
	maxManagerNameLength = 64
)

// ValidateManifestFilename checks that filename is a bare file name such as
// "Podfile" or ".ruby-version".
func ValidateManifestFilename(filename string) error {
	switch {
	case filename == "":
		return New(ErrCodeInvalidManifest, "manifest filename cannot be empty")
	case strings.ContainsAny(filename, `/\`):
		return New(ErrCodeInvalidManifest, "manifest filename %q contains a path separator", filename)
	case filename == "." || filename == "..":
		return New(ErrCodeInvalidManifest, "manifest filename %q names a directory", filename)
	}
	return nil
}

// ValidatePath checks a slash-separated manifest path received from a
// client. The path must be relative, stay below its root and be free of
// control characters and backslashes.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}
	if strings.ContainsFunc(path, unicode.IsControl) {
		return New(ErrCodeInvalidPath, "path contains control characters")
	}
	if strings.ContainsRune(path, '\\') {
		return New(ErrCodeInvalidPath, "path must use forward slashes")
	}
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative")
	}
	if slices.Contains(strings.Split(path, "/"), "..") {
		return New(ErrCodeInvalidPath, "path cannot leave its root (..)")
	}
	return nil
}

// ValidateURL checks that rawURL starts with one of schemes followed by
// "://". Without schemes, http and https are accepted.
func ValidateURL(rawURL string, schemes ...string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	if len(schemes) == 0 {
		schemes = []string{"http", "https"}
	}
	scheme, _, ok := strings.Cut(rawURL, "://")
	if !ok || !slices.Contains(schemes, scheme) {
		return New(ErrCodeInvalidInput, "URL %q must use %s", rawURL, strings.Join(schemes, " or "))
	}
	return nil
}

var managerNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateManagerName checks the form of a manager identifier such as
// "ruby-version". Whether the manager exists is up to the caller.
func ValidateManagerName(name string) error {
	switch {
	case name == "":
		return New(ErrCodeInvalidManager, "manager name cannot be empty")
	case len(name) > maxManagerNameLength:
		return New(ErrCodeInvalidManager, "manager name too long (max %d characters)", maxManagerNameLength)
	case !managerNamePattern.MatchString(name):
		return New(ErrCodeInvalidManager, "invalid manager name %q (lowercase letters, digits and dashes)", name)
	}
	return nil
}
