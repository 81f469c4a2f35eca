// Package rubyversion extracts the interpreter pin from .ruby-version files.
package rubyversion

import (
	"strings"

	"github.com/matzehuels/depscan/pkg/datasource"
	"github.com/matzehuels/depscan/pkg/manager"
)

// Name is the manager identifier.
const Name = "ruby-version"

// New returns the ruby-version manager definition.
func New() *manager.Manager {
	return &manager.Manager{
		Name:                 Name,
		FileMatch:            []string{`(^|/)\.ruby-version$`},
		Enabled:              true,
		Categories:           []string{"ruby"},
		SupportedDatasources: []string{datasource.RubyVersion},
		Extractor:            manager.ExtractorFunc(Extract),
	}
}

// Extract reports the whole trimmed file as the ruby version. Blank or
// binary content yields nil.
func Extract(content, _ string) *manager.PackageFile {
	version := strings.TrimSpace(content)
	if version == "" || !manager.IsText(content) {
		return nil
	}
	return &manager.PackageFile{
		Deps: []manager.Dependency{{
			DepName:     "ruby",
			PackageName: "ruby",
			Shape: manager.RegistryPin{
				Datasource:   datasource.RubyVersion,
				CurrentValue: version,
			},
		}},
	}
}
