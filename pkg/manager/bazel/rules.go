package bazel

import (
	"regexp"
	"strings"
)

// rule is one git_repository call with its string keyword arguments.
type rule struct {
	kind  string
	line  int // 0-based line of the rule name
	attrs map[string]string
}

var (
	rulePattern = regexp.MustCompile(`(?m)(?:^|[^\w.])(_?git_repository)\s*\(`)
	attrPattern = regexp.MustCompile(`(\w+)\s*=\s*(?:"([^"]*)"|'([^']*)')`)
)

// findGitRules returns the git_repository and _git_repository calls in
// content, in file order. Only string-valued arguments are captured; the
// first assignment of a key wins.
func findGitRules(content string) []rule {
	var rules []rule
	for _, m := range rulePattern.FindAllStringSubmatchIndex(content, -1) {
		open := m[1] - 1
		end := closingParen(content, open)
		if end < 0 {
			continue
		}

		r := rule{
			kind:  content[m[2]:m[3]],
			line:  strings.Count(content[:m[2]], "\n"),
			attrs: make(map[string]string),
		}
		for _, a := range attrPattern.FindAllStringSubmatch(content[open+1:end], -1) {
			if _, ok := r.attrs[a[1]]; ok {
				continue
			}
			r.attrs[a[1]] = a[2] + a[3]
		}
		rules = append(rules, r)
	}
	return rules
}

// closingParen returns the index of the parenthesis closing the one at
// open, skipping quoted strings and comments. It returns -1 for an
// unterminated call.
func closingParen(s string, open int) int {
	depth := 0
	var quote byte
	for i := open; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			for i < len(s) && s[i] != '\n' {
				i++
			}
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
