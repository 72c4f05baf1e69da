package scanner

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/figgo/figgo/core/logger"
)

// SourceExtensions are the file extensions treated as scannable source.
var SourceExtensions = []string{".js", ".jsx", ".ts", ".tsx"}

// ComponentExtensions are the extensions a UI-kit component file can have.
var ComponentExtensions = []string{".jsx", ".tsx"}

var (
	// Matches default, named-brace, and namespace imports alike: the
	// target is always the trailing quoted string.
	//   import X from "pkg"
	//   import { X } from "pkg"
	//   import * as X from "pkg"
	importFromPattern = regexp.MustCompile(`import\s+.*?\s+from\s+['"]([^'"]+)['"]`)

	// Matches side-effect imports: import "pkg"
	importBarePattern = regexp.MustCompile(`import\s+['"]([^'"]+)['"]`)
)

var (
	// import Button from "./components/ui/button" -- the component name is
	// the file's base name, not the local binding.
	uiDefaultPattern = regexp.MustCompile(`import\s+(\w+)\s+from\s+['"]\./components/ui/(\w+)['"]`)

	// import { Button } from "./components/ui"
	uiIndexPattern = regexp.MustCompile(`import\s+\{([^}]+)\}\s+from\s+['"]\./components/ui['"]`)

	// import { Button } from "./components/ui/button"
	uiFilePattern = regexp.MustCompile(`import\s+\{([^}]+)\}\s+from\s+['"]\./components/ui/\w+['"]`)
)

// ExtractImports returns every import target referenced by the source
// text. Matches are collected pattern by pattern, so all `from` targets
// come before all side-effect targets regardless of document order.
func ExtractImports(content string) []string {
	var imports []string

	for _, pattern := range []*regexp.Regexp{importFromPattern, importBarePattern} {
		for _, match := range pattern.FindAllStringSubmatch(content, -1) {
			imports = append(imports, match[1])
		}
	}

	return imports
}

// ReadImports extracts imports from the file at path. Unreadable files
// contribute no imports and only a warning; a single bad file must never
// abort a scan.
func ReadImports(path string) []string {
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Could not read %s: %v", path, err)
		return nil
	}
	return ExtractImports(string(content))
}

// ScanUIImports adds every UI-kit component name the source text imports
// into used. All three patterns run against the full text; a file can
// trigger more than one.
func ScanUIImports(content string, used map[string]struct{}) {
	for _, match := range uiDefaultPattern.FindAllStringSubmatch(content, -1) {
		used[match[2]] = struct{}{}
	}

	for _, pattern := range []*regexp.Regexp{uiIndexPattern, uiFilePattern} {
		for _, match := range pattern.FindAllStringSubmatch(content, -1) {
			for _, name := range strings.Split(match[1], ",") {
				// Strip "X as Y" aliasing down to the exported name.
				name = strings.TrimSpace(name)
				name, _, _ = strings.Cut(name, " as ")
				name = strings.TrimSpace(name)
				if name != "" {
					used[name] = struct{}{}
				}
			}
		}
	}
}

// ScanFileUIImports runs ScanUIImports over the file at path, warning and
// contributing nothing when the file cannot be read.
func ScanFileUIImports(path string, used map[string]struct{}) {
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Could not scan %s: %v", path, err)
		return
	}
	ScanUIImports(string(content), used)
}

// ListSourceFiles returns the direct children of dir matching the given
// extensions, extension-major then lexical. A missing directory yields no
// files.
func ListSourceFiles(dir string, extensions []string) []string {
	if _, err := os.Stat(dir); err != nil {
		logger.Debug("Source directory %s not present: %v", dir, err)
		return nil
	}

	fsys := os.DirFS(dir)

	var files []string
	for _, ext := range extensions {
		matches, err := doublestar.Glob(fsys, "*"+ext)
		if err != nil {
			logger.Warn("Could not list %s files in %s: %v", ext, dir, err)
			continue
		}
		for _, match := range matches {
			files = append(files, filepath.Join(dir, match))
		}
	}

	return files
}

// FindComponentFile locates a UI-kit component file by name anywhere
// under uiDir, .jsx before .tsx, first match wins. Returns "" when no
// file exists for the name.
func FindComponentFile(uiDir, name string) string {
	fsys := os.DirFS(uiDir)

	for _, ext := range ComponentExtensions {
		matches, err := doublestar.Glob(fsys, "**/"+name+ext)
		if err != nil {
			logger.Debug("Component lookup failed for %s%s: %v", name, ext, err)
			continue
		}
		if len(matches) > 0 {
			return filepath.Join(uiDir, matches[0])
		}
	}

	return ""
}
