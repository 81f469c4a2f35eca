package bazel

import (
	"regexp"
	"strings"
)

var (
	githubURLReplacer = strings.NewReplacer(
		"git@github.com:", "https://github.com/",
		"ssh://git@github.com/", "https://github.com/",
		"git://github.com/", "https://github.com/",
		"http://github.com/", "https://github.com/",
	)
	githubURLPattern = regexp.MustCompile(`^https://github\.com/(?P<packageName>[^/]+/[^/]+)`)
)

// normalizeGitHubURL rewrites the common git remote forms of a github.com
// repository to its https URL without the .git suffix.
func normalizeGitHubURL(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "git+")
	s = githubURLReplacer.Replace(s)
	s = strings.TrimSuffix(s, "/")
	return strings.TrimSuffix(s, ".git")
}

// githubPackageName returns owner/repo for a github.com remote.
func githubPackageName(remote string) (string, bool) {
	m := githubURLPattern.FindStringSubmatch(normalizeGitHubURL(remote))
	if m == nil {
		return "", false
	}
	return m[githubURLPattern.SubexpIndex("packageName")], true
}

func isHTTPS(remote string) bool {
	return strings.HasPrefix(remote, "https://")
}
