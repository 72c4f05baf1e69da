package usage

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/figgo/figgo/core/graph"
	"github.com/figgo/figgo/core/logger"
	"github.com/figgo/figgo/core/scanner"
)

// entryExtensions is the scan order for entry files at the app source root.
var entryExtensions = []string{".jsx", ".tsx", ".js", ".ts"}

// ComponentPruner finds and removes UI-kit component files that are not
// reachable from the project's entry files.
type ComponentPruner struct {
	projectDir string
	srcDir     string
	uiDir      string
	dryRun     bool

	graph *graph.ComponentGraph
}

type Option func(*ComponentPruner)

// WithDryRun counts dead files without deleting them.
func WithDryRun() Option {
	return func(p *ComponentPruner) {
		p.dryRun = true
	}
}

func New(projectDir string, opts ...Option) *ComponentPruner {
	srcDir := filepath.Join(projectDir, "src", "app")
	p := &ComponentPruner{
		projectDir: projectDir,
		srcDir:     srcDir,
		uiDir:      filepath.Join(srcDir, "components", "ui"),
		graph:      graph.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RemoveUnused deletes every UI-kit component file whose name is not in
// the transitive usage set and returns how many files were removed.
func (p *ComponentPruner) RemoveUnused() (int, error) {
	if _, err := os.Stat(p.uiDir); err != nil {
		logger.Debug("UI-kit directory %s not present, nothing to remove", p.uiDir)
		return 0, nil
	}

	componentFiles := scanner.ListSourceFiles(p.uiDir, scanner.ComponentExtensions)
	if len(componentFiles) == 0 {
		return 0, nil
	}

	used := p.findUsedComponents()

	removed := 0
	for _, file := range componentFiles {
		name := componentName(file)
		if _, keep := used[name]; keep {
			continue
		}

		logger.Debug("Unused component: %s (imported by: %v)", name, p.graph.Dependents(name))
		if !p.dryRun {
			if err := os.Remove(file); err != nil {
				logger.Warn("Could not remove %s: %v", file, err)
				continue
			}
		}
		removed++
	}

	return removed, nil
}

// Graph exposes the import graph built during the last RemoveUnused call.
func (p *ComponentPruner) Graph() *graph.ComponentGraph {
	return p.graph
}

// findUsedComponents seeds the usage set from the entry files at the app
// source root, then expands it over the component import graph until the
// worklist empties.
func (p *ComponentPruner) findUsedComponents() map[string]struct{} {
	seeds := make(map[string]struct{})
	for _, file := range scanner.ListSourceFiles(p.srcDir, entryExtensions) {
		scanner.ScanFileUIImports(file, seeds)
	}

	roots := make([]string, 0, len(seeds))
	for name := range seeds {
		roots = append(roots, name)
	}
	sort.Strings(roots)

	return p.graph.Expand(roots, func(name string) []string {
		file := scanner.FindComponentFile(p.uiDir, name)
		if file == "" {
			// Referenced but no backing file: keep the name so a
			// same-named file elsewhere survives, expand no further.
			logger.Debug("No component file found for %s", name)
			return nil
		}

		found := make(map[string]struct{})
		scanner.ScanFileUIImports(file, found)

		deps := make([]string, 0, len(found))
		for dep := range found {
			deps = append(deps, dep)
		}
		sort.Strings(deps)
		return deps
	})
}

func componentName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
