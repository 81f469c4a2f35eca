// Package meteor extracts npm dependencies from Meteor package.js files.
//
// Only the Npm.depends({...}) block is read:
//
//	Npm.depends({
//	  "moment": "2.29.4",
//	  'lodash': '4.17.21'
//	});
package meteor

import (
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depscan/pkg/datasource"
	"github.com/matzehuels/depscan/pkg/manager"
)

// Name is the manager identifier.
const Name = "meteor"

var (
	dependsPattern = regexp.MustCompile(`(?s)\nNpm\.depends\(\{(.*?)\}\);`)
	noisePattern   = regexp.MustCompile(`\s|\\n|\\t|'|"`)
)

// Extractor reads package.js files.
type Extractor struct {
	// Logger receives warnings about malformed pairs. Nil discards.
	Logger *log.Logger
}

// New returns the meteor manager definition.
func New(logger *log.Logger) *manager.Manager {
	return &manager.Manager{
		Name:                 Name,
		FileMatch:            []string{`(^|/)package\.js$`},
		Enabled:              true,
		Categories:           []string{"js"},
		SupportedDatasources: []string{datasource.Npm},
		Extractor:            &Extractor{Logger: logger},
	}
}

// Extract returns the name:version pairs of the Npm.depends block. Pairs
// missing either side are dropped with a warning. It returns nil when there
// is no block or no pair survives.
func (e *Extractor) Extract(content, packageFile string) *manager.PackageFile {
	m := dependsPattern.FindStringSubmatch(content)
	if m == nil {
		return nil
	}

	var deps []manager.Dependency
	for _, entry := range strings.Split(noisePattern.ReplaceAllString(m[1], ""), ",") {
		if entry == "" {
			continue
		}
		name, version, _ := strings.Cut(entry, ":")
		if name == "" || version == "" {
			e.logger().Warn("Incomplete npm.depends match", "file", packageFile, "entry", entry)
			continue
		}
		deps = append(deps, manager.Dependency{
			DepName:     name,
			PackageName: name,
			Shape: manager.RegistryPin{
				Datasource:   datasource.Npm,
				CurrentValue: version,
			},
		})
	}

	if len(deps) == 0 {
		return nil
	}
	return &manager.PackageFile{Deps: deps}
}

func (e *Extractor) logger() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return log.New(io.Discard)
}
