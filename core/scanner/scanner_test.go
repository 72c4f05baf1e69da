package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractImports(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "default import",
			content: `import axios from "axios";`,
			want:    []string{"axios"},
		},
		{
			name:    "named import",
			content: `import { motion } from "framer-motion";`,
			want:    []string{"framer-motion"},
		},
		{
			name:    "namespace import",
			content: `import * as THREE from "three";`,
			want:    []string{"three"},
		},
		{
			name:    "side-effect import",
			content: `import "./globals.css";`,
			want:    []string{"./globals.css"},
		},
		{
			name:    "single quotes",
			content: `import dayjs from 'dayjs';`,
			want:    []string{"dayjs"},
		},
		{
			name:    "no imports",
			content: `const x = 1;`,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractImports(tt.content))
		})
	}
}

func TestExtractImportsPatternOrder(t *testing.T) {
	// Side-effect imports are collected after "from" imports even when
	// they appear first in the source.
	content := `import "./globals.css";
import axios from "axios";
import { Button } from "./components/ui/button";
`

	got := ExtractImports(content)
	assert.Equal(t, []string{"axios", "./components/ui/button", "./globals.css"}, got)
}

func TestReadImportsUnreadableFile(t *testing.T) {
	dir := t.TempDir()

	// A directory with a source extension cannot be read as a file.
	bad := filepath.Join(dir, "broken.tsx")
	require.NoError(t, os.Mkdir(bad, 0755))

	assert.Empty(t, ReadImports(bad))
}

func TestScanUIImports(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "default import uses file base name",
			content: `import Button from "./components/ui/button";`,
			want:    []string{"button"},
		},
		{
			name:    "named imports from index",
			content: `import { Card, Dialog } from "./components/ui";`,
			want:    []string{"Card", "Dialog"},
		},
		{
			name:    "named imports from file",
			content: `import { Tabs } from "./components/ui/tabs";`,
			want:    []string{"Tabs"},
		},
		{
			name:    "alias stripped to exported name",
			content: `import { Dialog as Modal, Alert } from "./components/ui";`,
			want:    []string{"Alert", "Dialog"},
		},
		{
			name:    "unrelated imports ignored",
			content: `import axios from "axios";` + "\n" + `import { helper } from "./lib/helper";`,
			want:    nil,
		},
		{
			name: "multiple patterns in one file",
			content: `import Button from "./components/ui/button";
import { Card } from "./components/ui";
import { Tabs } from "./components/ui/tabs";`,
			want: []string{"Card", "Tabs", "button"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			used := make(map[string]struct{})
			ScanUIImports(tt.content, used)

			var got []string
			for name := range used {
				got = append(got, name)
			}
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestListSourceFiles(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"App.tsx", "main.ts", "styles.css"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	// Files in subdirectories are not direct children and must not appear.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "Deep.tsx"), []byte("x"), 0644))

	files := ListSourceFiles(dir, SourceExtensions)

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "App.tsx"),
		filepath.Join(dir, "main.ts"),
	}, files)
}

func TestListSourceFilesMissingDir(t *testing.T) {
	files := ListSourceFiles(filepath.Join(t.TempDir(), "nope"), SourceExtensions)
	assert.Empty(t, files)
}

func TestFindComponentFile(t *testing.T) {
	uiDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(uiDir, "button.tsx"), []byte("x"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(uiDir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(uiDir, "nested", "card.jsx"), []byte("x"), 0644))

	assert.Equal(t, filepath.Join(uiDir, "button.tsx"), FindComponentFile(uiDir, "button"))
	assert.Equal(t, filepath.Join(uiDir, "nested", "card.jsx"), FindComponentFile(uiDir, "card"))
	assert.Equal(t, "", FindComponentFile(uiDir, "ghost"))
}

func TestFindComponentFilePrefersJSX(t *testing.T) {
	uiDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(uiDir, "select.jsx"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(uiDir, "select.tsx"), []byte("x"), 0644))

	assert.Equal(t, filepath.Join(uiDir, "select.jsx"), FindComponentFile(uiDir, "select"))
}
