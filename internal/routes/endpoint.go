package routes

import (
	"fmt"
	"regexp"
	"strings"
)

// Endpoint represents one deduplicated route declaration from the server's
// route-registration file.
type Endpoint struct {
	Method   string   `json:"method"`
	Path     string   `json:"path"`
	Line     int      `json:"line"`
	FullPath string   `json:"full_path"`
	Used     bool     `json:"used"`
	Matches  []string `json:"matches,omitempty"`

	pattern *regexp.Regexp
}

// paramToken matches a path-parameter segment (e.g. :server_id) inside an
// already regexp-quoted path. The optional leading double backslash covers
// routing conventions that escape the colon in the declaration itself.
var paramToken = regexp.MustCompile(`(?:\\\\)?:([a-zA-Z0-9_]+)`)

// NewEndpoint builds an Endpoint for a declared route. The mount prefix is
// prepended to the declared sub-path, and the search pattern is derived once.
func NewEndpoint(method, path string, line int, mountPrefix string) (*Endpoint, error) {
	ep := &Endpoint{
		Method:   method,
		Path:     path,
		Line:     line,
		FullPath: mountPrefix + path,
	}

	quoted := regexp.QuoteMeta(ep.FullPath)
	// Param segments match any run of non-slash characters; wildcard
	// segments match any run of non-whitespace characters.
	src := paramToken.ReplaceAllString(quoted, `[^/]+`)
	src = strings.ReplaceAll(src, `\*`, `[^\s]*`)

	pattern, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("building match pattern for %s %s: %w", method, ep.FullPath, err)
	}
	ep.pattern = pattern
	return ep, nil
}

// MatchesText reports whether the endpoint's derived pattern occurs anywhere
// in the given file text.
func (e *Endpoint) MatchesText(text string) bool {
	return e.pattern.MatchString(text)
}

// Pattern returns the derived search pattern source, mainly for diagnostics.
func (e *Endpoint) Pattern() string {
	return e.pattern.String()
}

// MarkUsed flags the endpoint as referenced and records the matching file.
// Only the first call flips Used; later matches still append to Matches.
func (e *Endpoint) MarkUsed(file string) {
	e.Used = true
	e.Matches = append(e.Matches, file)
}
