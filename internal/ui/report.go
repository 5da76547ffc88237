// Package ui renders the usage report and drives the progress spinner.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/apidrift/cli/internal/routes"
)

// NoEndpointsMessage is printed when the routes file yields zero
// declarations. A degenerate success, not an error.
const NoEndpointsMessage = "No API endpoints parsed."

// RenderReport returns the textual usage report. Output is a pure function
// of the endpoint list, so unchanged inputs yield byte-identical reports.
func RenderReport(endpoints []*routes.Endpoint, uiDirs []string) string {
	if len(endpoints) == 0 {
		return NoEndpointsMessage + "\n"
	}

	var unused []*routes.Endpoint
	for _, ep := range endpoints {
		if !ep.Used {
			unused = append(unused, ep)
		}
	}
	used := len(endpoints) - len(unused)

	var b strings.Builder
	fmt.Fprintf(&b, "Total API endpoints found: %d\n", len(endpoints))
	fmt.Fprintf(&b, "Used by UI artifacts:      %d\n", used)
	fmt.Fprintf(&b, "Unused in UI (potential):  %d\n", len(unused))
	b.WriteString("\n")

	if len(unused) > 0 {
		fmt.Fprintf(&b, "Endpoints without matches in %s:\n", dirsLabel(uiDirs))
		for _, ep := range unused {
			fmt.Fprintf(&b, "  - %-6s %s (defined line %d)\n", ep.Method, ep.FullPath, ep.Line)
		}
		b.WriteString("\n")
		b.WriteString("NOTE: Some endpoints might be consumed by non-UI clients (CLI, integrations).\n")
		b.WriteString("Use this report as a starting point and double-check before removing anything.\n")
	} else {
		b.WriteString("All parsed endpoints have at least one UI reference.\n")
	}

	return b.String()
}

func dirsLabel(uiDirs []string) string {
	if len(uiDirs) == 0 {
		return "the configured UI roots"
	}
	labels := make([]string, len(uiDirs))
	for i, dir := range uiDirs {
		labels[i] = dir + "/*"
	}
	return strings.Join(labels, " or ")
}

// IsInteractive reports whether stdout is attached to a terminal. Piped or
// redirected output skips the spinner so reports stay stable.
func IsInteractive() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
