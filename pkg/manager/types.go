package manager

import "slices"

// SkipReason explains why a declared dependency cannot be looked up.
type SkipReason string

const (
	// SkipGitDependency marks a git source without a tag to compare against.
	SkipGitDependency SkipReason = "git-dependency"
	// SkipPathDependency marks a dependency vendored from the local filesystem.
	SkipPathDependency SkipReason = "path-dependency"
	// SkipUnspecifiedVersion marks a bare name with no version constraint.
	SkipUnspecifiedVersion SkipReason = "unspecified-version"
)

// Shape is the resolved form of a dependency declaration. It is one of
// [RegistryPin], [GitPin] or [Skip].
type Shape interface {
	isShape()
}

// RegistryPin is a dependency pinned to a version in a package registry.
type RegistryPin struct {
	Datasource   string
	CurrentValue string
	// RegistryURLs are the registries declared before the dependency, in
	// declaration order. Empty means the datasource default.
	RegistryURLs []string
}

// GitPin is a dependency pinned to a tag of a git repository.
type GitPin struct {
	Datasource    string
	CurrentValue  string
	CurrentDigest string
}

// Skip is a dependency that is reported but never looked up.
type Skip struct {
	Reason SkipReason
}

func (RegistryPin) isShape() {}
func (GitPin) isShape()      {}
func (Skip) isShape()        {}

// ManagerData carries manager-specific positional information.
type ManagerData struct {
	LineNumber int `json:"lineNumber"` // 0-based line of the declaration
}

// Dependency is one declaration found in a manifest.
type Dependency struct {
	DepName            string       // Name as written in the manifest
	PackageName        string       // Name to look up at the datasource
	GroupName          string       // Parent name for grouped declarations (e.g. pod subspecs)
	CommitMessageTopic string       // Human label for update commits (optional)
	ManagerData        *ManagerData // Nil for whole-file managers
	Shape              Shape
}

// Datasource returns the datasource id, or "" for skipped dependencies.
func (d Dependency) Datasource() string {
	switch s := d.Shape.(type) {
	case RegistryPin:
		return s.Datasource
	case GitPin:
		return s.Datasource
	}
	return ""
}

// CurrentValue returns the pinned version or tag, if any.
func (d Dependency) CurrentValue() string {
	switch s := d.Shape.(type) {
	case RegistryPin:
		return s.CurrentValue
	case GitPin:
		return s.CurrentValue
	}
	return ""
}

// CurrentDigest returns the pinned commit of a git dependency, if any.
func (d Dependency) CurrentDigest() string {
	if s, ok := d.Shape.(GitPin); ok {
		return s.CurrentDigest
	}
	return ""
}

// SkipReason returns why the dependency is skipped, or "".
func (d Dependency) SkipReason() SkipReason {
	if s, ok := d.Shape.(Skip); ok {
		return s.Reason
	}
	return ""
}

// RegistryURLs returns a copy of the registries in effect for the dependency.
func (d Dependency) RegistryURLs() []string {
	if s, ok := d.Shape.(RegistryPin); ok {
		return slices.Clone(s.RegistryURLs)
	}
	return nil
}

// LineNumber returns the 0-based source line, when the manager tracks one.
func (d Dependency) LineNumber() (int, bool) {
	if d.ManagerData == nil {
		return 0, false
	}
	return d.ManagerData.LineNumber, true
}

// Skipped reports whether the dependency carries a skip reason.
func (d Dependency) Skipped() bool {
	return d.SkipReason() != ""
}

// PackageFile is everything extracted from one manifest.
type PackageFile struct {
	Deps      []Dependency
	LockFiles []string // Sibling lock files that exist next to the manifest
}

// Skipped counts the dependencies that carry a skip reason.
func (p *PackageFile) Skipped() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, d := range p.Deps {
		if d.Skipped() {
			n++
		}
	}
	return n
}
