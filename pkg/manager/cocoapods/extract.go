package cocoapods

import (
	"io"
	"regexp"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depscan/pkg/datasource"
	"github.com/matzehuels/depscan/pkg/manager"
)

const (
	// Name is the manager identifier.
	Name = "cocoapods"
	// LockFileName is the lock file CocoaPods writes next to a Podfile.
	LockFileName = "Podfile.lock"
)

var newlinePattern = regexp.MustCompile(`\r?\n`)

// Extractor reads Podfiles. The zero value is ready to use.
type Extractor struct {
	// Logger receives debug output. Nil discards.
	Logger *log.Logger
}

// New returns the cocoapods manager definition.
func New(logger *log.Logger) *manager.Manager {
	return &manager.Manager{
		Name:       Name,
		FileMatch:  []string{`(^|/)Podfile$`},
		Enabled:    true,
		Categories: []string{"swift"},
		SupportedDatasources: []string{
			datasource.GitTags,
			datasource.GitHubTags,
			datasource.GitLabTags,
			datasource.Pod,
		},
		LockFileNames: []string{LockFileName},
		Extractor:     &Extractor{Logger: logger},
	}
}

// Extract walks the Podfile line by line. Non-text content yields nil; a
// Podfile without pods yields an empty package file.
func (e *Extractor) Extract(content, packageFile string) *manager.PackageFile {
	logger := e.logger()
	logger.Debug("extracting podfile", "file", packageFile)

	if !manager.IsText(content) {
		logger.Debug("skipping binary content", "file", packageFile)
		return nil
	}

	pf := &manager.PackageFile{Deps: extractLines(newlinePattern.Split(content, -1))}
	if packageFile == "" {
		return pf
	}
	lockFiles, err := manager.ExistingSiblings(packageFile, LockFileName)
	if err != nil {
		logger.Debug("lock file probe failed", "file", packageFile, "error", err)
	}
	pf.LockFiles = lockFiles
	return pf
}

func extractLines(lines []string) []manager.Dependency {
	deps := []manager.Dependency{}
	var r resolver
	for lineNumber, line := range lines {
		dep, ok := r.resolve(ParseLine(line))
		if !ok {
			continue
		}
		dep.ManagerData = &manager.ManagerData{LineNumber: lineNumber}
		deps = append(deps, dep)
	}
	return deps
}

func (e *Extractor) logger() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return discard
}

var discard = log.New(io.Discard)
