package naming

import (
	"regexp"
	"strings"
)

var requirementName = regexp.MustCompile(`^\s*([A-Za-z0-9][A-Za-z0-9._-]*)`)

// StripSpecifier returns the lower-cased project name of a requirement string
// such as "Test2<=2.0.0", "requests[security] >= 2.0" or "six; python_version<'3'".
// It returns false when the string names no project.
func StripSpecifier(requirement string) (string, bool) {
	m := requirementName.FindStringSubmatch(requirement)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}

// StripSpecifiers applies StripSpecifier to every requirement and drops the ones
// without a name. Blank lines and comments yield nothing. The result is never nil.
func StripSpecifiers(requirements []string) []string {
	names := make([]string, 0, len(requirements))
	for _, r := range requirements {
		if strings.HasPrefix(strings.TrimSpace(r), "#") {
			continue
		}
		if name, ok := StripSpecifier(r); ok {
			names = append(names, name)
		}
	}
	return names
}
