package cocoapods

import (
	"regexp"
	"slices"
	"strings"

	"github.com/matzehuels/depscan/pkg/datasource"
	"github.com/matzehuels/depscan/pkg/manager"
)

var platformPattern = regexp.MustCompile(`[@/](?P<platform>github|gitlab)\.com[:/](?P<account>[^/]+)/(?P<repo>[^/]+)`)

// GitDep resolves a git declaration with a tag. It returns false when the
// line has no git URL.
//
// github.com and gitlab.com URLs, in https or scp form, map to the host's tag
// datasource with an account/repo package name. Any other URL uses the
// generic git-tags datasource with the URL itself as the package name.
func GitDep(p ParsedLine) (manager.Dependency, bool) {
	if p.Git == "" {
		return manager.Dependency{}, false
	}

	dep := manager.Dependency{
		DepName:     p.PackageName,
		PackageName: p.Git,
		GroupName:   p.GroupName,
	}
	pin := manager.GitPin{
		Datasource:    datasource.GitTags,
		CurrentValue:  p.Tag,
		CurrentDigest: p.Commit,
	}

	if m := platformPattern.FindStringSubmatch(p.Git); m != nil {
		platform := m[platformPattern.SubexpIndex("platform")]
		account := m[platformPattern.SubexpIndex("account")]
		repo := m[platformPattern.SubexpIndex("repo")]
		if account != "" && repo != "" {
			pin.Datasource = datasource.GitLabTags
			if platform == "github" {
				pin.Datasource = datasource.GitHubTags
			}
			dep.PackageName = account + "/" + strings.TrimSuffix(repo, ".git")
		}
	}

	dep.Shape = pin
	return dep, true
}

// resolver turns parsed lines into dependencies. It owns the registries
// declared so far in one Podfile.
type resolver struct {
	registryURLs []string
}

// resolve records any source on the line, then classifies the declaration.
// It returns false when the line declares no pod.
func (r *resolver) resolve(p ParsedLine) (manager.Dependency, bool) {
	if p.Source != "" {
		r.registryURLs = append(r.registryURLs, strings.TrimRight(p.Source, "/"))
	}
	if p.PackageName == "" {
		return manager.Dependency{}, false
	}

	dep := manager.Dependency{
		DepName:     p.PackageName,
		PackageName: p.PackageName,
		GroupName:   p.GroupName,
	}

	switch {
	case p.CurrentValue != "":
		dep.Shape = manager.RegistryPin{
			Datasource:   datasource.Pod,
			CurrentValue: p.CurrentValue,
			RegistryURLs: slices.Clone(r.registryURLs),
		}
	case p.Git != "" && p.Tag != "":
		dep, _ = GitDep(p)
	case p.Git != "":
		dep.Shape = manager.Skip{Reason: manager.SkipGitDependency}
	case p.Path != "":
		dep.Shape = manager.Skip{Reason: manager.SkipPathDependency}
	default:
		dep.Shape = manager.Skip{Reason: manager.SkipUnspecifiedVersion}
	}
	return dep, true
}
