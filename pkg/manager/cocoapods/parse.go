package cocoapods

import (
	"regexp"
)

// ParsedLine holds the fields captured from one Podfile line. Unset fields
// are empty.
type ParsedLine struct {
	PackageName  string // spec or spec/subspec
	GroupName    string // spec
	CurrentValue string
	Git          string
	Tag          string
	Commit       string
	Path         string
	Source       string
}

// lineRules are applied in order to every line. Each rule owns one concern;
// later matches overwrite earlier ones.
var lineRules = []*regexp.Regexp{
	regexp.MustCompile(`^\s*pod\s+(['"])(?P<spec>[^'"/]+)(/(?P<subspec>[^'"]+))?(['"])`),
	regexp.MustCompile(`^\s*pod\s+(['"])[^'"]+(['"])\s*,\s*(['"])(?P<currentValue>[^'"]+)(['"])\s*$`),
	regexp.MustCompile(`,\s*:git\s*=>\s*(['"])(?P<git>[^'"]+)(['"])`),
	regexp.MustCompile(`,\s*:tag\s*=>\s*(['"])(?P<tag>[^'"]+)(['"])`),
	regexp.MustCompile(`,\s*:path\s*=>\s*(['"])(?P<path>[^'"]+)(['"])`),
	regexp.MustCompile(`^\s*source\s*(['"])(?P<source>[^'"]+)(['"])`),
	regexp.MustCompile(`,\s*:commit\s*=>\s*(['"])(?P<commit>[^'"]+)(['"])`),
}

var commentPattern = regexp.MustCompile(`#.*$`)

// ParseLine captures the fields of a single Podfile line.
func ParseLine(line string) ParsedLine {
	var res ParsedLine
	if line == "" {
		return res
	}
	line = commentPattern.ReplaceAllString(line, "")

	groups := make(map[string]string)
	for _, rule := range lineRules {
		m := rule.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		for i, name := range rule.SubexpNames() {
			if name == "" || m[2*i] < 0 {
				continue
			}
			groups[name] = line[m[2*i]:m[2*i+1]]
		}
	}

	if spec := groups["spec"]; spec != "" {
		res.PackageName = spec
		if sub := groups["subspec"]; sub != "" {
			res.PackageName = spec + "/" + sub
		}
		res.GroupName = spec
	}
	res.CurrentValue = groups["currentValue"]
	res.Git = groups["git"]
	res.Tag = groups["tag"]
	res.Commit = groups["commit"]
	res.Path = groups["path"]
	res.Source = groups["source"]
	return res
}
