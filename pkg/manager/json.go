package manager

import (
	"encoding/json"
	"fmt"
)

const (
	shapeRegistry = "registry"
	shapeGit      = "git"
	shapeSkip     = "skip"
)

// dependencyJSON is the flat wire form of a Dependency. Shape names the
// variant so the value can be decoded without guessing.
type dependencyJSON struct {
	DepName            string       `json:"depName,omitempty"`
	PackageName        string       `json:"packageName"`
	GroupName          string       `json:"groupName,omitempty"`
	CommitMessageTopic string       `json:"commitMessageTopic,omitempty"`
	Shape              string       `json:"shape"`
	Datasource         string       `json:"datasource,omitempty"`
	CurrentValue       string       `json:"currentValue,omitempty"`
	CurrentDigest      string       `json:"currentDigest,omitempty"`
	SkipReason         SkipReason   `json:"skipReason,omitempty"`
	RegistryURLs       []string     `json:"registryUrls,omitempty"`
	ManagerData        *ManagerData `json:"managerData,omitempty"`
}

type packageFileJSON struct {
	Deps      []Dependency `json:"deps"`
	LockFiles []string     `json:"lockFiles,omitempty"`
}

// MarshalJSON encodes the dependency with its shape flattened into the
// datasource, currentValue, currentDigest, skipReason and registryUrls keys.
func (d Dependency) MarshalJSON() ([]byte, error) {
	out := dependencyJSON{
		DepName:            d.DepName,
		PackageName:        d.PackageName,
		GroupName:          d.GroupName,
		CommitMessageTopic: d.CommitMessageTopic,
		ManagerData:        d.ManagerData,
	}
	switch s := d.Shape.(type) {
	case RegistryPin:
		out.Shape = shapeRegistry
		out.Datasource = s.Datasource
		out.CurrentValue = s.CurrentValue
		out.RegistryURLs = s.RegistryURLs
	case GitPin:
		out.Shape = shapeGit
		out.Datasource = s.Datasource
		out.CurrentValue = s.CurrentValue
		out.CurrentDigest = s.CurrentDigest
	case Skip:
		out.Shape = shapeSkip
		out.SkipReason = s.Reason
	default:
		return nil, fmt.Errorf("dependency %q has no shape", d.PackageName)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (d *Dependency) UnmarshalJSON(data []byte) error {
	var in dependencyJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	var shape Shape
	switch in.Shape {
	case shapeRegistry:
		shape = RegistryPin{Datasource: in.Datasource, CurrentValue: in.CurrentValue, RegistryURLs: in.RegistryURLs}
	case shapeGit:
		shape = GitPin{Datasource: in.Datasource, CurrentValue: in.CurrentValue, CurrentDigest: in.CurrentDigest}
	case shapeSkip:
		shape = Skip{Reason: in.SkipReason}
	default:
		return fmt.Errorf("dependency %q: unknown shape %q", in.PackageName, in.Shape)
	}

	*d = Dependency{
		DepName:            in.DepName,
		PackageName:        in.PackageName,
		GroupName:          in.GroupName,
		CommitMessageTopic: in.CommitMessageTopic,
		ManagerData:        in.ManagerData,
		Shape:              shape,
	}
	return nil
}

// MarshalJSON encodes the package file. Deps is always an array.
func (p PackageFile) MarshalJSON() ([]byte, error) {
	out := packageFileJSON{Deps: p.Deps, LockFiles: p.LockFiles}
	if out.Deps == nil {
		out.Deps = []Dependency{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (p *PackageFile) UnmarshalJSON(data []byte) error {
	var in packageFileJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	p.Deps = in.Deps
	p.LockFiles = in.LockFiles
	return nil
}
