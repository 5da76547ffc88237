// Package routes extracts declared API routes from a server's
// route-registration source file using textual pattern matching.
package routes

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// routeCall matches a verb-tagged registration call with a double-quoted
// string literal path, e.g. api.GET("/servers", handler).
var routeCall = regexp.MustCompile(`api\.([A-Z]+)\s*\(\s*"([^"]+)"`)

// ParseFile reads the route-registration file and returns the deduplicated,
// declaration-ordered list of endpoints. A missing file is an error; a file
// with zero matching declarations yields an empty list and no error.
func ParseFile(path, mountPrefix string) ([]*Endpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("cannot locate routes file at %s", path)
		}
		return nil, fmt.Errorf("reading routes file %s: %w", path, err)
	}
	return Parse(string(data), mountPrefix)
}

// Parse extracts endpoints from routes-file text. Matches are collected in
// top-to-bottom order; duplicates of the same (method, path) pair keep the
// first occurrence's line number.
func Parse(text, mountPrefix string) ([]*Endpoint, error) {
	var endpoints []*Endpoint
	seen := make(map[string]bool)

	for _, loc := range routeCall.FindAllStringSubmatchIndex(text, -1) {
		method := text[loc[2]:loc[3]]
		path := text[loc[4]:loc[5]]

		key := method + " " + path
		if seen[key] {
			continue
		}
		seen[key] = true

		line := strings.Count(text[:loc[0]], "\n") + 1
		ep, err := NewEndpoint(method, path, line, mountPrefix)
		if err != nil {
			return nil, err
		}
		endpoints = append(endpoints, ep)
	}

	return endpoints, nil
}
