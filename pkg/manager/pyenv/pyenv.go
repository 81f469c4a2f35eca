// Package pyenv extracts the interpreter pin from .python-version files.
//
// Python versions are looked up as tags of the official python container
// image, so the dependency points at the docker datasource.
package pyenv

import (
	"strings"

	"github.com/matzehuels/depscan/pkg/datasource"
	"github.com/matzehuels/depscan/pkg/manager"
)

// Name is the manager identifier.
const Name = "pyenv"

// New returns the pyenv manager definition.
func New() *manager.Manager {
	return &manager.Manager{
		Name:                 Name,
		FileMatch:            []string{`(^|/)\.python-version$`},
		Enabled:              true,
		Categories:           []string{"python"},
		SupportedDatasources: []string{datasource.Docker},
		Extractor:            manager.ExtractorFunc(Extract),
	}
}

// Extract reports the whole trimmed file as the python version. Blank or
// binary content yields nil.
func Extract(content, _ string) *manager.PackageFile {
	version := strings.TrimSpace(content)
	if version == "" || !manager.IsText(content) {
		return nil
	}
	return &manager.PackageFile{
		Deps: []manager.Dependency{{
			DepName:            "python",
			PackageName:        "python",
			CommitMessageTopic: "Python",
			Shape: manager.RegistryPin{
				Datasource:   datasource.Docker,
				CurrentValue: version,
			},
		}},
	}
}
