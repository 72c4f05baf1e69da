package analyzer

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/figgo/figgo/core/config"
	"github.com/figgo/figgo/core/logger"
	"github.com/figgo/figgo/core/models"
	"github.com/figgo/figgo/core/registry"
	"github.com/figgo/figgo/core/scanner"
)

// DependencyAnalyzer scans an export's component files and reports which
// npm packages and UI-kit components the code actually imports.
type DependencyAnalyzer struct {
	srcPath       string
	componentsDir string
	matcher       *registry.Matcher
	excluded      map[string]struct{}
}

func New(srcPath string, cfg *config.Config) *DependencyAnalyzer {
	excluded := make(map[string]struct{}, len(cfg.Analyzer.ExcludedPackages))
	for _, pkg := range cfg.Analyzer.ExcludedPackages {
		excluded[pkg] = struct{}{}
	}

	return &DependencyAnalyzer{
		srcPath:       srcPath,
		componentsDir: filepath.Join(srcPath, "app", "components"),
		matcher:       registry.NewMatcher(registry.MatchStrategy(cfg.Analyzer.MatchStrategy), cfg.Analyzer.ExtraComponents),
		excluded:      excluded,
	}
}

// Analyze walks the direct children of app/components and aggregates the
// classified imports into a deduplicated, sorted report.
func (a *DependencyAnalyzer) Analyze() (*models.Report, error) {
	npmPackages := make(map[string]struct{})
	uiComponents := make(map[string]struct{})

	files := scanner.ListSourceFiles(a.componentsDir, scanner.SourceExtensions)
	logger.Debug("Analyzing %d component files in %s", len(files), a.componentsDir)

	for _, file := range files {
		for _, imp := range scanner.ReadImports(file) {
			switch {
			case a.isNpmPackage(imp):
				if _, skip := a.excluded[imp]; !skip {
					npmPackages[imp] = struct{}{}
				}
			default:
				for _, name := range a.matcher.MatchNames(imp) {
					uiComponents[name] = struct{}{}
				}
			}
		}
	}

	return &models.Report{
		NpmPackages:  sortedKeys(npmPackages),
		UIComponents: sortedKeys(uiComponents),
	}, nil
}

// isNpmPackage reports whether the import target must be fetched from a
// package registry: anything not starting with "." or "/".
func (a *DependencyAnalyzer) isNpmPackage(importPath string) bool {
	return !strings.HasPrefix(importPath, ".") && !strings.HasPrefix(importPath, "/")
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
