package registry

import (
	"sort"
	"strings"
)

// MatchStrategy controls how an import path is tested against the
// registry. Substring matching is the historical behavior of Figma Make
// exports and is deliberately loose: "./utils-helper" matches "utils".
// Segment matching only accepts whole path segments.
type MatchStrategy string

const (
	StrategySubstring MatchStrategy = "substring"
	StrategySegment   MatchStrategy = "segment"
)

// components ships with every Figma Make export template.
var components = map[string]struct{}{
	"accordion": {}, "alert-dialog": {}, "alert": {}, "aspect-ratio": {},
	"avatar": {}, "badge": {}, "breadcrumb": {}, "button": {},
	"calendar": {}, "card": {}, "carousel": {}, "chart": {},
	"checkbox": {}, "collapsible": {}, "command": {}, "context-menu": {},
	"dialog": {}, "drawer": {}, "dropdown-menu": {}, "form": {},
	"hover-card": {}, "input-otp": {}, "input": {}, "label": {},
	"menubar": {}, "navigation-menu": {}, "pagination": {}, "popover": {},
	"progress": {}, "radio-group": {}, "resizable": {}, "scroll-area": {},
	"select": {}, "separator": {}, "sheet": {}, "sidebar": {},
	"skeleton": {}, "slider": {}, "sonner": {}, "switch": {},
	"table": {}, "tabs": {}, "textarea": {}, "toggle-group": {},
	"toggle": {}, "tooltip": {}, "use-mobile": {}, "utils": {},
}

// sourceExtensions are stripped from path segments before segment
// comparison so "./components/ui/button.tsx" still matches "button".
var sourceExtensions = []string{".js", ".jsx", ".ts", ".tsx"}

type Matcher struct {
	strategy MatchStrategy
	names    map[string]struct{}
}

func NewMatcher(strategy MatchStrategy, extra []string) *Matcher {
	names := make(map[string]struct{}, len(components)+len(extra))
	for name := range components {
		names[name] = struct{}{}
	}
	for _, name := range extra {
		names[name] = struct{}{}
	}

	if strategy != StrategySegment {
		strategy = StrategySubstring
	}

	return &Matcher{
		strategy: strategy,
		names:    names,
	}
}

// Matches reports whether the import path references a known UI-kit
// component under the matcher's strategy.
func (m *Matcher) Matches(importPath string) bool {
	return len(m.MatchNames(importPath)) > 0
}

// MatchNames returns every registry entry the import path matches,
// sorted ascending. Under substring matching a single path can match
// more than one entry ("./ui/toggle-group" matches both "toggle" and
// "toggle-group").
func (m *Matcher) MatchNames(importPath string) []string {
	var matched []string

	switch m.strategy {
	case StrategySegment:
		for _, segment := range strings.Split(importPath, "/") {
			for _, ext := range sourceExtensions {
				segment = strings.TrimSuffix(segment, ext)
			}
			if _, ok := m.names[segment]; ok {
				matched = append(matched, segment)
			}
		}
	default:
		for name := range m.names {
			if strings.Contains(importPath, name) {
				matched = append(matched, name)
			}
		}
	}

	sort.Strings(matched)
	return matched
}

// Names returns the registry contents sorted ascending.
func (m *Matcher) Names() []string {
	names := make([]string, 0, len(m.names))
	for name := range m.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
