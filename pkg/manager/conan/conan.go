// Package conan defines the conan manager.
//
// The conanfile extractor is not implemented here. Conanfiles are matched
// and listed, but with no extractor registered detection never selects this
// manager.
package conan

import (
	"github.com/matzehuels/depscan/pkg/datasource"
	"github.com/matzehuels/depscan/pkg/manager"
)

// Name is the manager identifier.
const Name = "conan"

// New returns the conan manager definition. It is disabled by default.
func New() *manager.Manager {
	return &manager.Manager{
		Name:                 Name,
		FileMatch:            []string{`(^|/)conanfile\.(txt|py)$`},
		Enabled:              false,
		Categories:           []string{"c"},
		SupportedDatasources: []string{datasource.Conan},
	}
}
