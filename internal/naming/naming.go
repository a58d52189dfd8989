package naming

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// Rule identifies the convention a path segment failed.
type Rule string

// Rule constants reported in violations.
const (
	RulePascalCase Rule = "pascal-case"
	RuleKebabCase  Rule = "kebab-case"
)

var (
	pascalCasePattern = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	kebabCasePattern  = regexp.MustCompile(`^[a-z0-9]+(?:[-.][a-z0-9]+)*$`)

	// routeParamPattern matches router parameter segments like [id] or [slug].
	routeParamPattern = regexp.MustCompile(`^\[[a-zA-Z][a-zA-Z0-9]*\]$`)
)

// Violation describes a single naming-convention failure.
type Violation struct {
	Path    string // The full path that was checked
	Segment string // The offending path segment
	Rule    Rule   // The convention the segment failed
	Message string // Human-readable explanation
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Result holds the outcome of a naming check over a set of paths.
type Result struct {
	Checked    int // Number of paths that were actually validated
	Skipped    int // Number of paths outside the checked roots or extensions
	Violations []Violation
}

// Ok reports whether the check passed with no violations.
func (r *Result) Ok() bool {
	return len(r.Violations) == 0
}

// Conventions configures which paths are validated and how.
type Conventions struct {
	// Roots are the path prefixes under which names are enforced.
	Roots []string
	// ComponentExtensions mark a file as a component (PascalCase basename).
	ComponentExtensions []string
	// SourceExtensions mark a file as ordinary source (kebab-case basename).
	SourceExtensions []string
	// AllowedComponents are component basenames exempt from PascalCase,
	// e.g. "App" and "index".
	AllowedComponents []string
}

// Default returns the built-in conventions enforced when a project
// manifest does not override them.
func Default() Conventions {
	return Conventions{
		Roots:               []string{"src"},
		ComponentExtensions: []string{".vue"},
		SourceExtensions:    []string{".js", ".ts", ".jsx", ".tsx", ".mjs", ".cjs"},
		AllowedComponents:   []string{"App", "index", "error"},
	}
}

// Merge returns a copy of c with extra allowed names and roots appended.
// Duplicates are ignored.
func (c Conventions) Merge(extraAllowed, extraRoots []string) Conventions {
	merged := c
	merged.AllowedComponents = appendUnique(c.AllowedComponents, extraAllowed)
	merged.Roots = appendUnique(c.Roots, extraRoots)
	return merged
}

func appendUnique(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]bool, len(base)+len(extra))
	for _, v := range append(append([]string{}, base...), extra...) {
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// Check validates each path against the conventions and returns the
// aggregate result. Paths are expected to be repo-relative; both slash
// styles are accepted. The check is stateless and touches no files.
func Check(paths []string, conv Conventions) *Result {
	result := &Result{}

	for _, p := range paths {
		rel := path.Clean(strings.ReplaceAll(p, "\\", "/"))
		if rel == "." || rel == "" {
			result.Skipped++
			continue
		}

		if !underRoots(rel, conv.Roots) {
			result.Skipped++
			continue
		}

		segments := strings.Split(rel, "/")
		filename := segments[len(segments)-1]
		dirs := segments[:len(segments)-1]

		ext := path.Ext(filename)
		base := strings.TrimSuffix(filename, ext)

		switch {
		case contains(conv.ComponentExtensions, ext):
			result.Checked++
			result.Violations = append(result.Violations, checkDirs(rel, dirs)...)
			if v := checkComponent(rel, base, conv.AllowedComponents); v != nil {
				result.Violations = append(result.Violations, *v)
			}
		case contains(conv.SourceExtensions, ext):
			result.Checked++
			result.Violations = append(result.Violations, checkDirs(rel, dirs)...)
			if v := checkSource(rel, base); v != nil {
				result.Violations = append(result.Violations, *v)
			}
		default:
			// Assets, styles, markdown, and extensionless files are not
			// name-checked, and neither are the directories holding them.
			result.Skipped++
		}
	}

	return result
}

// underRoots reports whether rel sits under one of the given prefixes.
func underRoots(rel string, roots []string) bool {
	for _, root := range roots {
		root = strings.Trim(strings.ReplaceAll(root, "\\", "/"), "/")
		if root == "" {
			continue
		}
		if rel == root || strings.HasPrefix(rel, root+"/") {
			return true
		}
	}
	return false
}

// checkComponent validates a component basename: PascalCase unless the
// name is allow-listed or a router parameter like [id].
func checkComponent(fullPath, base string, allowed []string) *Violation {
	if contains(allowed, base) || routeParamPattern.MatchString(base) {
		return nil
	}
	if pascalCasePattern.MatchString(base) {
		return nil
	}
	return &Violation{
		Path:    fullPath,
		Segment: base,
		Rule:    RulePascalCase,
		Message: fmt.Sprintf("component %q must be PascalCase (e.g. %q)", base, suggestPascal(base)),
	}
}

// checkSource validates an ordinary source basename: kebab-case with
// optional dot-separated suffixes (auth.store).
func checkSource(fullPath, base string) *Violation {
	if kebabCasePattern.MatchString(base) {
		return nil
	}
	return &Violation{
		Path:    fullPath,
		Segment: base,
		Rule:    RuleKebabCase,
		Message: fmt.Sprintf("file %q must be kebab-case (e.g. %q)", base, suggestKebab(base)),
	}
}

// checkDirs validates every directory segment on the path as kebab-case.
// Router parameter directories like [id] are accepted.
func checkDirs(fullPath string, dirs []string) []Violation {
	var out []Violation
	for _, d := range dirs {
		if kebabCasePattern.MatchString(d) || routeParamPattern.MatchString(d) {
			continue
		}
		out = append(out, Violation{
			Path:    fullPath,
			Segment: d,
			Rule:    RuleKebabCase,
			Message: fmt.Sprintf("directory %q must be kebab-case (e.g. %q)", d, suggestKebab(d)),
		})
	}
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// suggestPascal converts a name to a PascalCase suggestion for error messages.
func suggestPascal(name string) string {
	parts := splitWords(name)
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	if b.Len() == 0 {
		return name
	}
	return b.String()
}

// suggestKebab converts a name to a kebab-case suggestion for error messages.
func suggestKebab(name string) string {
	parts := splitWords(name)
	if len(parts) == 0 {
		return name
	}
	return strings.Join(parts, "-")
}

// splitWords breaks a name on delimiters and camelCase humps, returning
// lowercase word parts.
func splitWords(name string) []string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
	}
	for i, r := range name {
		switch {
		case r == '-' || r == '_' || r == '.' || r == ' ':
			flush()
		case r >= 'A' && r <= 'Z':
			// A hump starts a new word unless the previous rune was also upper.
			if i > 0 && !isUpper(rune(name[i-1])) {
				flush()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
