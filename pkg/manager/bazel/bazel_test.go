package bazel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depscan/pkg/datasource"
)

const workspace = `load("@bazel_tools//tools/build_defs/repo:git.bzl", "git_repository")

git_repository(
    name = "rules_foo",
    remote = "https://github.com/example/rules_foo.git",
    tag = "1.2.0",
)

# pinned by commit
_git_repository(
    name = "bar",
    commit = "0123456789abcdef",
    remote = "git@github.com:example/bar.git",
)

git_repository(
    name = "no_pin",
    remote = "https://github.com/example/no_pin.git",
    branch = "main",
)

git_repository(
    name = "elsewhere",
    remote = "https://gitlab.com/example/elsewhere.git",
    tag = "v1",
)

new_git_repository(
    name = "not_a_git_rule",
    remote = "https://github.com/example/other.git",
    tag = "v9",
)
`

func TestExtract(t *testing.T) {
	pf := (&Extractor{}).Extract(workspace, "WORKSPACE")
	if pf == nil {
		t.Fatal("Extract() = nil")
	}
	if len(pf.Deps) != 2 {
		t.Fatalf("got %d deps, want 2: %+v", len(pf.Deps), pf.Deps)
	}

	foo, bar := pf.Deps[0], pf.Deps[1]
	if foo.DepName != "rules_foo" || foo.PackageName != "example/rules_foo" || foo.CurrentValue() != "1.2.0" {
		t.Errorf("rules_foo = %+v", foo)
	}
	if foo.Datasource() != datasource.GitHubReleases {
		t.Errorf("Datasource() = %q, want github-releases", foo.Datasource())
	}
	if line, _ := foo.LineNumber(); line != 2 {
		t.Errorf("rules_foo line = %d, want 2", line)
	}

	if bar.PackageName != "example/bar" || bar.CurrentDigest() != "0123456789abcdef" || bar.CurrentValue() != "" {
		t.Errorf("bar = %+v", bar)
	}
}

func TestExtract_NoRules(t *testing.T) {
	for _, content := range []string{"", "workspace(name = \"x\")\n", "git_repository(\n    name = \"open\",\n"} {
		if pf := (&Extractor{}).Extract(content, "WORKSPACE"); pf != nil {
			t.Errorf("Extract(%q) = %+v, want nil", content, pf)
		}
	}
}

func TestExtract_NonHTTPSLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	e := &Extractor{Logger: log.New(&buf)}

	e.Extract(workspace, "WORKSPACE")
	e.Extract(workspace, "WORKSPACE")

	if got := strings.Count(buf.String(), "non-https"); got != 1 {
		t.Errorf("logged %d notices, want 1:\n%s", got, buf.String())
	}
}

func TestFindGitRules(t *testing.T) {
	content := `git_repository(
    name = 'single',
    remote = "https://github.com/a/b",
    tag = "v1",  # trailing ) in a comment
    patches = ["//:fix(1).patch"],
)
`
	rules := findGitRules(content)
	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(rules))
	}
	r := rules[0]
	if r.kind != "git_repository" || r.line != 0 {
		t.Errorf("rule = %+v", r)
	}
	if r.attrs["name"] != "single" || r.attrs["tag"] != "v1" {
		t.Errorf("attrs = %v", r.attrs)
	}
}

func TestGithubPackageName(t *testing.T) {
	tests := []struct {
		remote string
		want   string
		ok     bool
	}{
		{"https://github.com/owner/repo.git", "owner/repo", true},
		{"https://github.com/owner/repo", "owner/repo", true},
		{"git@github.com:owner/repo.git", "owner/repo", true},
		{"git://github.com/owner/repo", "owner/repo", true},
		{"https://gitlab.com/owner/repo", "", false},
		{"https://github.com/owner", "", false},
	}
	for _, tt := range tests {
		got, ok := githubPackageName(tt.remote)
		if got != tt.want || ok != tt.ok {
			t.Errorf("githubPackageName(%q) = %q, %v; want %q, %v", tt.remote, got, ok, tt.want, tt.ok)
		}
	}
}
