// Package manager defines the extraction contract shared by every manifest
// type that depscan understands.
//
// # Overview
//
// A manager owns one family of hand-authored files (a Podfile, a
// .ruby-version file, a Bazel WORKSPACE) and turns the file text into a list
// of [Dependency] values. Each dependency names the datasource an update
// planner should query and carries the pinned value it found, or a
// [SkipReason] when nothing can be looked up.
//
// # Extraction Contract
//
// Every manager implements [Extractor]:
//
//	pf := cocoapods.New(nil).Extract(content, "ios/Podfile")
//	if pf == nil {
//	    return // nothing recognisable; skip the file
//	}
//	for _, dep := range pf.Deps {
//	    fmt.Println(dep.PackageName, dep.Datasource(), dep.CurrentValue())
//	}
//
// Extractors are pure functions of their input plus, at most, one read-only
// existence check for a sibling lock file. They never return errors.
//
// # Dependency Shapes
//
// [Dependency.Shape] is one of:
//
//   - [RegistryPin]: a version pinned in a package registry, with the
//     registry URLs declared before it
//   - [GitPin]: a tag of a git repository, mapped to a host-specific tag
//     datasource when the host is recognised
//   - [Skip]: a declaration that cannot be resolved, with its reason
//
// The accessor methods ([Dependency.Datasource], [Dependency.CurrentValue],
// [Dependency.SkipReason], ...) read through the shape.
//
// # Detection
//
// [Manager.FileMatch] patterns decide which files a manager owns. [Detect]
// returns the first enabled manager that matches a path.
//
// Supported managers live in subpackages; [managers] lists them all.
//
// [managers]: github.com/matzehuels/depscan/pkg/manager/managers
package manager
