package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/figgo/figgo/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExport(t *testing.T, files map[string]string) string {
	t.Helper()

	src := t.TempDir()
	componentsDir := filepath.Join(src, "app", "components")
	require.NoError(t, os.MkdirAll(componentsDir, 0755))

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(componentsDir, name), []byte(content), 0644))
	}

	return src
}

func TestAnalyzeExternalOnly(t *testing.T) {
	src := writeExport(t, map[string]string{
		"Hero.tsx": `import axios from "axios";`,
	})

	report, err := New(src, config.Default()).Analyze()
	require.NoError(t, err)

	assert.Equal(t, []string{"axios"}, report.NpmPackages)
	assert.Empty(t, report.UIComponents)
}

func TestAnalyzeUIComponentDetection(t *testing.T) {
	src := writeExport(t, map[string]string{
		"Hero.tsx": `import { Button } from "./components/ui/button";`,
	})

	report, err := New(src, config.Default()).Analyze()
	require.NoError(t, err)

	assert.Empty(t, report.NpmPackages)
	assert.Contains(t, report.UIComponents, "button")
}

func TestAnalyzeExcludedPackages(t *testing.T) {
	src := writeExport(t, map[string]string{
		"Hero.tsx": `import React from "react";
import ReactDOM from "react-dom";
import { jsx } from "react/jsx-runtime";
import axios from "axios";`,
	})

	report, err := New(src, config.Default()).Analyze()
	require.NoError(t, err)

	assert.Equal(t, []string{"axios"}, report.NpmPackages)
}

func TestAnalyzeSortedAndDeduplicated(t *testing.T) {
	src := writeExport(t, map[string]string{
		"Hero.tsx":    `import { z } from "zod";` + "\n" + `import axios from "axios";`,
		"Pricing.tsx": `import axios from "axios";` + "\n" + `import { z } from "zod";`,
		"Footer.tsx":  `import axios from "axios";`,
	})

	report, err := New(src, config.Default()).Analyze()
	require.NoError(t, err)

	assert.Equal(t, []string{"axios", "zod"}, report.NpmPackages)
}

func TestAnalyzeUnreadableFileTolerated(t *testing.T) {
	src := writeExport(t, map[string]string{
		"Hero.tsx": `import axios from "axios";`,
	})
	// A directory with a source extension: reading it fails, the scan
	// must carry on.
	require.NoError(t, os.Mkdir(filepath.Join(src, "app", "components", "broken.tsx"), 0755))

	report, err := New(src, config.Default()).Analyze()
	require.NoError(t, err)

	assert.Equal(t, []string{"axios"}, report.NpmPackages)
}

func TestAnalyzeMissingComponentsDir(t *testing.T) {
	report, err := New(t.TempDir(), config.Default()).Analyze()
	require.NoError(t, err)

	assert.True(t, report.Empty())
}

func TestAnalyzeRelativeNonUIIgnored(t *testing.T) {
	src := writeExport(t, map[string]string{
		"Hero.tsx": `import { helper } from "./lib/helper";`,
	})

	report, err := New(src, config.Default()).Analyze()
	require.NoError(t, err)

	assert.True(t, report.Empty())
}

func TestAnalyzeSegmentStrategy(t *testing.T) {
	cfg := config.Default()
	cfg.Analyzer.MatchStrategy = "segment"

	src := writeExport(t, map[string]string{
		"Hero.tsx": `import { helper } from "./utils-helper";
import { Button } from "./components/ui/button";`,
	})

	report, err := New(src, cfg).Analyze()
	require.NoError(t, err)

	assert.Equal(t, []string{"button"}, report.UIComponents)
}
