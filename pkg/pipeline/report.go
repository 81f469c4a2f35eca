package pipeline

import (
	"encoding/json"
	"time"

	"github.com/matzehuels/depscan/pkg/manager"
)

// FileResult is the outcome of extracting one manifest.
type FileResult struct {
	Path    string
	Manager string

	// PackageFile is nil when the manager found nothing to report.
	PackageFile *manager.PackageFile

	// Cached reports whether the result came from the cache.
	Cached   bool
	Duration time.Duration

	// Err is set when the file could not be extracted; Error is its
	// user-facing message.
	Err   error
	Error string
}

// Deps returns the number of extracted dependencies.
func (f *FileResult) Deps() int {
	if f == nil || f.PackageFile == nil {
		return 0
	}
	return len(f.PackageFile.Deps)
}

// Failed reports whether extraction failed.
func (f *FileResult) Failed() bool {
	return f.Err != nil || f.Error != ""
}

type fileResultJSON struct {
	Path        string               `json:"path"`
	Manager     string               `json:"manager,omitempty"`
	PackageFile *manager.PackageFile `json:"packageFile"`
	Cached      bool                 `json:"cached,omitempty"`
	DurationMS  int64                `json:"durationMs"`
	Error       string               `json:"error,omitempty"`
}

// MarshalJSON encodes the result with the duration in milliseconds.
func (f FileResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(fileResultJSON{
		Path:        f.Path,
		Manager:     f.Manager,
		PackageFile: f.PackageFile,
		Cached:      f.Cached,
		DurationMS:  f.Duration.Milliseconds(),
		Error:       f.Error,
	})
}

// Report summarises a batch extraction.
type Report struct {
	RunID     string        `json:"runId"`
	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"-"`
	Files     []FileResult  `json:"files"`
	Stats     Stats         `json:"stats"`
}

// Stats are the totals of a report.
type Stats struct {
	Files      int   `json:"files"`
	Extracted  int   `json:"extracted"` // files that produced a package file
	Failed     int   `json:"failed"`
	Deps       int   `json:"deps"`
	Skipped    int   `json:"skipped"` // dependencies carrying a skip reason
	CacheHits  int   `json:"cacheHits"`
	DurationMS int64 `json:"durationMs"`
}

func (r *Report) computeStats() Stats {
	s := Stats{Files: len(r.Files), DurationMS: r.Duration.Milliseconds()}
	for i := range r.Files {
		f := &r.Files[i]
		switch {
		case f.Failed():
			s.Failed++
			continue
		case f.PackageFile != nil:
			s.Extracted++
		}
		if f.Cached {
			s.CacheHits++
		}
		s.Deps += f.Deps()
		s.Skipped += f.PackageFile.Skipped()
	}
	return s
}
