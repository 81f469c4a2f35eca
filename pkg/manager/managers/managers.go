// Package managers lists every manager depscan ships with.
package managers

import (
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depscan/pkg/errors"
	"github.com/matzehuels/depscan/pkg/manager"
	"github.com/matzehuels/depscan/pkg/manager/bazel"
	"github.com/matzehuels/depscan/pkg/manager/cocoapods"
	"github.com/matzehuels/depscan/pkg/manager/conan"
	"github.com/matzehuels/depscan/pkg/manager/meteor"
	"github.com/matzehuels/depscan/pkg/manager/pyenv"
	"github.com/matzehuels/depscan/pkg/manager/rubyversion"
)

// All returns fresh definitions of every manager, in detection order.
// Extractors that log write to logger; nil discards.
func All(logger *log.Logger) []*manager.Manager {
	return []*manager.Manager{
		cocoapods.New(logger),
		bazel.New(logger),
		meteor.New(logger),
		rubyversion.New(),
		pyenv.New(),
		conan.New(),
	}
}

// Configure applies user overrides to list in place.
//
// When enabled is non-empty, exactly the named managers are enabled.
// fileMatch replaces the file patterns of the named managers. Unknown names
// yield an INVALID_MANAGER error.
func Configure(list []*manager.Manager, enabled []string, fileMatch map[string][]string) error {
	for _, name := range enabled {
		if err := known(list, name); err != nil {
			return err
		}
	}
	if len(enabled) > 0 {
		for _, m := range list {
			m.Enabled = slices.Contains(enabled, m.Name)
		}
	}

	for name, patterns := range fileMatch {
		if err := known(list, name); err != nil {
			return err
		}
		manager.Find(name, list).FileMatch = slices.Clone(patterns)
	}
	return nil
}

func known(list []*manager.Manager, name string) error {
	if err := errors.ValidateManagerName(name); err != nil {
		return err
	}
	if manager.Find(name, list) == nil {
		return errors.New(errors.ErrCodeInvalidManager, "unknown manager: %s (known: %s)", name, strings.Join(manager.Names(list), ", "))
	}
	return nil
}
