package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcherSubstring(t *testing.T) {
	m := NewMatcher(StrategySubstring, nil)

	tests := []struct {
		importPath string
		want       bool
	}{
		{"./components/ui/button", true},
		{"./components/ui/alert-dialog", true},
		{"../ui/select", true},
		{"./lib/helpers", false},
		{"./App", false},
		// Substring matching is loose on purpose: "utils" is a registry
		// entry and a substring of the path.
		{"./utils-helper", true},
	}

	for _, tt := range tests {
		t.Run(tt.importPath, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Matches(tt.importPath))
		})
	}
}

func TestMatcherSegment(t *testing.T) {
	m := NewMatcher(StrategySegment, nil)

	tests := []struct {
		importPath string
		want       bool
	}{
		{"./components/ui/button", true},
		{"./components/ui/button.tsx", true},
		{"./utils-helper", false},
		{"./buttons/extra", false},
	}

	for _, tt := range tests {
		t.Run(tt.importPath, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Matches(tt.importPath))
		})
	}
}

func TestMatchNames(t *testing.T) {
	m := NewMatcher(StrategySubstring, nil)

	// "toggle-group" contains both "toggle" and "toggle-group".
	assert.Equal(t, []string{"toggle", "toggle-group"}, m.MatchNames("./components/ui/toggle-group"))
	assert.Equal(t, []string{"button"}, m.MatchNames("./components/ui/button"))
	assert.Empty(t, m.MatchNames("./lib/api"))
}

func TestMatcherIdempotent(t *testing.T) {
	m := NewMatcher(StrategySubstring, nil)

	first := m.MatchNames("./components/ui/card")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, m.MatchNames("./components/ui/card"))
	}
}

func TestMatcherExtraComponents(t *testing.T) {
	m := NewMatcher(StrategySubstring, []string{"fancy-widget"})

	assert.True(t, m.Matches("./components/ui/fancy-widget"))
	assert.Contains(t, m.Names(), "fancy-widget")
	assert.Contains(t, m.Names(), "button")
}

func TestNamesSorted(t *testing.T) {
	names := NewMatcher(StrategySubstring, nil).Names()

	assert.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
}
