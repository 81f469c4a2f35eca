// Package pipeline runs manifest extraction for the CLI and the HTTP API.
//
// # Overview
//
// A [Runner] picks the manager for each manifest, runs its extractor and
// caches the result keyed by manager, path and content hash. Both entry
// points share it so that detection, caching and error reporting behave
// the same everywhere.
//
// # Usage
//
// Extract one file:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.ExtractFile(ctx, "ios/Podfile", pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	for _, dep := range res.PackageFile.Deps {
//	    fmt.Println(dep.PackageName, dep.CurrentValue())
//	}
//
// Extract a batch concurrently:
//
//	paths, _ := pipeline.Discover("./repo", runner.Managers, false)
//	report, err := runner.ExtractAll(ctx, paths, pipeline.Options{})
//
// Per-file failures are recorded in the [Report]; only cancellation aborts
// a batch.
package pipeline

import (
	"github.com/matzehuels/depscan/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWorkers is the number of files extracted concurrently.
	DefaultWorkers = 8

	// MaxFileSize is the largest manifest read from disk or accepted by the
	// API. Hand-written manifests are far smaller.
	MaxFileSize = 4 << 20
)

// Output formats understood by the CLI and the API.
const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// ValidFormats lists the accepted output formats.
var ValidFormats = map[string]bool{
	FormatJSON:  true,
	FormatTable: true,
}

// =============================================================================
// Options
// =============================================================================

// Options control how a manifest is matched and whether the cache is read.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Manager forces a manager by name instead of matching file patterns.
	Manager string `json:"manager,omitempty"`

	// Force allows managers that are disabled by configuration.
	Force bool `json:"force,omitempty"`

	// Refresh skips the cache lookup; the fresh result is still stored.
	Refresh bool `json:"refresh,omitempty"`

	// SkipEmpty reports manifests without a single dependency as absent
	// instead of as an empty package file.
	SkipEmpty bool `json:"skipEmpty,omitempty"`

	// SkipLockFiles keeps extractors from probing the local filesystem for
	// sibling lock files. Set it when the path does not refer to a local
	// file.
	SkipLockFiles bool `json:"-"`
}

// Validate checks the option values.
func (o Options) Validate() error {
	if o.Manager != "" {
		if err := errors.ValidateManagerName(o.Manager); err != nil {
			return err
		}
	}
	return nil
}

// ValidateFormat checks that an output format is known.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: json, table)", format)
	}
	return nil
}
