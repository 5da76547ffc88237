// Package scanner walks the UI trees and marks endpoints that are
// textually referenced by at least one file.
package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
	"github.com/gobwas/glob"

	"github.com/apidrift/cli/internal/config"
	"github.com/apidrift/cli/internal/logger"
	"github.com/apidrift/cli/internal/routes"
)

// Scanner scans UI artifact trees for endpoint references.
type Scanner struct {
	root       string
	uiDirs     []string
	extensions map[string]bool
	excludes   []glob.Glob
	log        *logger.Logger
}

// Result carries scan statistics for diagnostics and the JSON report.
type Result struct {
	FilesScanned int `json:"files_scanned"`
	FilesSkipped int `json:"files_skipped"`
}

// New builds a Scanner rooted at the repository root. Exclude patterns are
// compiled eagerly so a bad pattern surfaces before any walking happens.
func New(root string, cfg *config.Config, log *logger.Logger) (*Scanner, error) {
	if log == nil {
		log = logger.Nop()
	}

	extensions := make(map[string]bool, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		extensions[strings.ToLower(ext)] = true
	}

	excludes := make([]glob.Glob, 0, len(cfg.ExcludeDirs))
	for _, pattern := range cfg.ExcludeDirs {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		excludes = append(excludes, g)
	}

	return &Scanner{
		root:       root,
		uiDirs:     cfg.UIDirs,
		extensions: extensions,
		excludes:   excludes,
		log:        log.WithComponent("scanner"),
	}, nil
}

// Scan walks every configured UI root and marks each endpoint on its first
// textual match. Roots that do not exist contribute zero files. Endpoints
// already marked used are not re-checked in later files.
func (s *Scanner) Scan(ctx context.Context, endpoints []*routes.Endpoint) (*Result, error) {
	result := &Result{}

	for _, dir := range s.uiDirs {
		base := filepath.Join(s.root, dir)
		if _, err := os.Stat(base); os.IsNotExist(err) {
			s.log.Debugf("ui root %s does not exist, skipping", base)
			continue
		}

		err := filepath.Walk(base, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}

			if info.IsDir() {
				if s.excluded(info.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !s.extensions[strings.ToLower(filepath.Ext(path))] {
				return nil
			}

			matched, err := s.scanFile(path, endpoints, result)
			if err != nil {
				return err
			}
			if matched > 0 {
				s.log.Debugf("%s matched %d endpoint(s)", path, matched)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", base, err)
		}
	}

	return result, nil
}

// scanFile reads one candidate file and tests every not-yet-used endpoint
// against its text. Returns how many endpoints this file marked used.
func (s *Scanner) scanFile(path string, endpoints []*routes.Endpoint, result *Result) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	// Binary content cannot reference a route; treat it as "no match".
	if enry.IsBinary(data) {
		s.log.Debugf("skipping binary file %s", path)
		result.FilesSkipped++
		return 0, nil
	}
	result.FilesScanned++

	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	text := string(data)
	matched := 0
	for _, ep := range endpoints {
		if ep.Used {
			continue
		}
		if ep.MatchesText(text) {
			ep.MarkUsed(rel)
			matched++
		}
	}
	return matched, nil
}

func (s *Scanner) excluded(name string) bool {
	for _, g := range s.excludes {
		if g.Match(name) {
			return true
		}
	}
	return false
}
