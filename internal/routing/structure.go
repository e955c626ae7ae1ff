// internal/routing/structure.go
//
// Permalink structure → regular expression.
//
// Rules
// -----
// 1. Leading and trailing "/" of the structure are ignored; a matched path
//    may or may not end in "/".
// 2. Literal text is matched verbatim (regexp.QuoteMeta).
// 3. Each %tag% becomes one capture group:
//      %category%                       (.+?)   may span segments
//      %post_id%                        ([0-9]+)
//      %year%                           ([0-9]{4})
//      %monthnum% %day% %hour% ...      ([0-9]{1,2})
//      %postname% %author% and unknown  ([^/]+)
// 4. Compiled patterns are cached per structure string.

package routing

import (
	"regexp"
	"strings"
	"sync"
)

var tagRE = regexp.MustCompile(`%[a-z_]+%`)

var tagPatterns = map[string]string{
	"%category%": `(.+?)`,
	"%post_id%":  `([0-9]+)`,
	"%year%":     `([0-9]{4})`,
	"%monthnum%": `([0-9]{1,2})`,
	"%day%":      `([0-9]{1,2})`,
	"%hour%":     `([0-9]{1,2})`,
	"%minute%":   `([0-9]{1,2})`,
	"%second%":   `([0-9]{1,2})`,
}

// Pattern matches request paths against one permalink structure.
type Pattern struct {
	re   *regexp.Regexp
	tags []string // tag name (without %) per capture group
}

var patterns sync.Map // structure → *Pattern

// Compile returns the (cached) Pattern for structure.
func Compile(structure string) (*Pattern, error) {
	if p, ok := patterns.Load(structure); ok {
		return p.(*Pattern), nil
	}

	body := strings.Trim(structure, "/")
	var b strings.Builder
	var tags []string
	b.WriteString("^/")

	last := 0
	for _, loc := range tagRE.FindAllStringIndex(body, -1) {
		b.WriteString(regexp.QuoteMeta(body[last:loc[0]]))
		tag := body[loc[0]:loc[1]]
		if expr, ok := tagPatterns[tag]; ok {
			b.WriteString(expr)
		} else {
			b.WriteString(`([^/]+)`)
		}
		tags = append(tags, strings.Trim(tag, "%"))
		last = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(body[last:]))
	b.WriteString("/?$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, err
	}
	p := &Pattern{re: re, tags: tags}
	patterns.Store(structure, p)
	return p, nil
}

// Match returns tag → value for path, or nil when path does not match.
func (p *Pattern) Match(path string) map[string]string {
	m := p.re.FindStringSubmatch(path)
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(p.tags))
	for i, tag := range p.tags {
		out[tag] = m[i+1]
	}
	return out
}

// LeafSegment returns the last "/"-separated segment of a category path.
func LeafSegment(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.LastIndexByte(path, '/'); i != -1 {
		return path[i+1:]
	}
	return path
}

// Segments counts the "/"-separated segments of a category path.
func Segments(path string) int {
	path = strings.Trim(path, "/")
	if path == "" {
		return 0
	}
	return strings.Count(path, "/") + 1
}
