// Package bazel extracts git_repository rules from Bazel WORKSPACE files.
//
// Only rules pinned to a tag or a commit on github.com produce a
// dependency; they are looked up as GitHub releases:
//
//	git_repository(
//	    name = "rules_foo",
//	    remote = "https://github.com/example/rules_foo.git",
//	    tag = "1.2.0",
//	)
package bazel

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depscan/pkg/datasource"
	"github.com/matzehuels/depscan/pkg/manager"
)

// Name is the manager identifier.
const Name = "bazel"

// Extractor reads WORKSPACE files. The zero value is ready to use.
type Extractor struct {
	// Logger receives notices about unusual remotes. Nil discards.
	Logger *log.Logger

	warned sync.Map // remote -> struct{}
}

// New returns the bazel manager definition.
func New(logger *log.Logger) *manager.Manager {
	return &manager.Manager{
		Name: Name,
		FileMatch: []string{
			`(^|/)WORKSPACE(|\.bazel|\.bzlmod)$`,
			`\.bzl$`,
		},
		Enabled:              true,
		Categories:           []string{"bazel"},
		SupportedDatasources: []string{datasource.GitHubReleases},
		Extractor:            &Extractor{Logger: logger},
	}
}

// Extract returns one dependency per usable git rule, or nil when there is
// none.
func (e *Extractor) Extract(content, packageFile string) *manager.PackageFile {
	if !manager.IsText(content) {
		return nil
	}

	var deps []manager.Dependency
	for _, r := range findGitRules(content) {
		dep, ok := e.gitDep(r)
		if !ok {
			continue
		}
		deps = append(deps, dep)
	}

	if len(deps) == 0 {
		return nil
	}
	e.logger().Debug("extracted bazel rules", "file", packageFile, "deps", len(deps))
	return &manager.PackageFile{Deps: deps}
}

// gitDep maps a rule to a dependency. Rules without a name, a remote, or
// a tag or commit are dropped, as are remotes not hosted on github.com.
func (e *Extractor) gitDep(r rule) (manager.Dependency, bool) {
	name, remote := r.attrs["name"], r.attrs["remote"]
	tag, commit := r.attrs["tag"], r.attrs["commit"]
	if name == "" || remote == "" || (tag == "" && commit == "") {
		return manager.Dependency{}, false
	}

	if !isHTTPS(remote) {
		if _, seen := e.warned.LoadOrStore(remote, struct{}{}); !seen {
			e.logger().Info("Bazel: non-https git_repository URL", "url", remote)
		}
	}

	pkg, ok := githubPackageName(remote)
	if !ok {
		return manager.Dependency{}, false
	}

	return manager.Dependency{
		DepName:     name,
		PackageName: pkg,
		ManagerData: &manager.ManagerData{LineNumber: r.line},
		Shape: manager.GitPin{
			Datasource:    datasource.GitHubReleases,
			CurrentValue:  tag,
			CurrentDigest: commit,
		},
	}, true
}

func (e *Extractor) logger() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return log.New(io.Discard)
}
