// Package datasource names the upstream services that can list versions for
// an extracted dependency.
//
// The identifiers are opaque to depscan: extractors only stamp them onto
// dependencies so that an update planner knows where to look. Nothing in this
// module talks to the services themselves.
package datasource

const (
	Pod            = "pod"             // CocoaPods trunk and private spec repos
	GitTags        = "git-tags"        // tags of any git remote
	GitHubTags     = "github-tags"     // tags of a github.com repository
	GitLabTags     = "gitlab-tags"     // tags of a gitlab.com project
	GitHubReleases = "github-releases" // releases of a github.com repository
	Docker         = "docker"          // container image tags
	RubyVersion    = "ruby-version"    // released Ruby interpreter versions
	Npm            = "npm"             // the npm registry
	Conan          = "conan"           // ConanCenter and compatible remotes
)
