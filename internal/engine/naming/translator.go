// Package naming translates package names and dependency constraints between
// the Python source ecosystem and native packaging.
package naming

import (
	"slices"
	"strings"

	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/zerr"
)

var validOperators = []string{"<<", "<=", "=", ">=", ">>", "==", "!=", "<", ">"}

// Translator maps source names to native names and back.
// Its tables are built once and never modified, so it is safe for concurrent use.
type Translator struct {
	forward map[string]string
	reverse map[string]string
}

// New builds a Translator from the default exception table followed by extra.
// Later entries override earlier ones in the forward direction;
// the reverse direction keeps the first source name seen for a native base.
func New(extra ...domain.NameException) *Translator {
	t := &Translator{
		forward: make(map[string]string),
		reverse: make(map[string]string),
	}
	for _, e := range append(domain.DefaultNameExceptions(), extra...) {
		source := strings.ToLower(strings.TrimSpace(e.Source))
		base := strings.ToLower(strings.TrimSpace(e.NativeBase))
		if source == "" || base == "" {
			continue
		}
		t.forward[source] = base
		if _, taken := t.reverse[base]; !taken {
			t.reverse[base] = source
		}
	}
	return t
}

// ToNativeName returns the native package name for a source package.
func (t *Translator) ToNativeName(name string) string {
	lower := strings.ToLower(name)
	if base, ok := t.forward[lower]; ok {
		return domain.NativePrefix + base
	}
	return domain.NativePrefix + lower
}

// HasException reports whether name deviates from the default naming scheme.
func (t *Translator) HasException(name string) bool {
	_, ok := t.forward[strings.ToLower(name)]
	return ok
}

// ToSourceName maps the name part of a native constraint back to a source name.
// An architecture qualifier such as ":any" is dropped. It returns false for the
// interpreter itself, which is never a dependency.
func (t *Translator) ToSourceName(nativeName string) (string, bool) {
	name, _, _ := strings.Cut(nativeName, ":")
	name = strings.ToLower(strings.TrimSpace(name))
	if name == domain.InterpreterName || name == "" {
		return "", false
	}
	name = strings.TrimPrefix(name, domain.NativePrefix)
	if source, ok := t.reverse[name]; ok {
		return source, true
	}
	return name, true
}

// ParseConstraintList splits a dpkg dependency field such as
// "erlang-nox (>= 1:13.b.3), adduser (= 3.1), logrotate" into one constraint
// per entry. Parentheses are removed; operator and version are kept verbatim,
// as is the whitespace leading each entry. For alternatives ("a | b") only the
// first is kept.
func (t *Translator) ParseConstraintList(raw string) ([]domain.NativeConstraint, error) {
	constraints := make([]domain.NativeConstraint, 0)
	if strings.TrimSpace(raw) == "" {
		return constraints, nil
	}

	for _, entry := range strings.Split(strings.TrimRight(raw, "\r\n"), ",") {
		c, err := parseEntry(entry)
		if err != nil {
			return nil, zerr.With(err, "field", raw)
		}
		constraints = append(constraints, c)
	}
	return constraints, nil
}

func parseEntry(entry string) (domain.NativeConstraint, error) {
	first, _, _ := strings.Cut(entry, "|")

	open := strings.IndexByte(first, '(')
	closing := strings.IndexByte(first, ')')

	if open < 0 {
		if closing >= 0 {
			return "", malformed(entry, "unbalanced parenthesis")
		}
		name := strings.TrimRight(first, " \t")
		if err := checkName(name, entry); err != nil {
			return "", err
		}
		return domain.NativeConstraint(name), nil
	}

	if closing < open || strings.TrimSpace(first[closing+1:]) != "" {
		return "", malformed(entry, "unbalanced parenthesis")
	}

	name := strings.TrimRight(first[:open], " \t")
	if err := checkName(name, entry); err != nil {
		return "", err
	}

	fields := strings.Fields(first[open+1 : closing])
	if len(fields) != 2 || !slices.Contains(validOperators, fields[0]) {
		return "", malformed(entry, "expected \"(<operator> <version>)\"")
	}

	return domain.NativeConstraint(name + " " + fields[0] + " " + fields[1]), nil
}

func checkName(name, entry string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return malformed(entry, "empty package name")
	}
	if strings.ContainsAny(trimmed, " \t") {
		return malformed(entry, "package name contains whitespace")
	}
	return nil
}

func malformed(entry, reason string) error {
	err := zerr.Wrap(domain.ErrMalformedConstraint, reason)
	return zerr.With(err, "entry", entry)
}

// ConstraintsToBareNames returns the source names of constraints,
// dropping operators, versions and the interpreter entry.
func (t *Translator) ConstraintsToBareNames(constraints []domain.NativeConstraint) []string {
	names := make([]string, 0, len(constraints))
	for _, c := range constraints {
		if name, ok := t.ToSourceName(c.Name()); ok {
			names = append(names, name)
		}
	}
	return names
}

// ExtendExtraArgs returns a copy of extraArgs followed by one "-d" constraint per dependency.
// A pinned dependency becomes "<native> >= <version>", an unpinned one the bare native name.
func (t *Translator) ExtendExtraArgs(extraArgs []string, deps domain.Frontier) []string {
	out := make([]string, 0, len(extraArgs)+2*len(deps))
	out = append(out, extraArgs...)
	for _, name := range deps.Names() {
		constraint := t.ToNativeName(name)
		if version := deps[name]; version != "" {
			constraint += " >= " + version
		}
		out = append(out, "-d", constraint)
	}
	return out
}
