package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	require.NoError(t, os.MkdirAll(filepath.Join(src, "app", "components"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "app", "App.tsx"), []byte("app"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "app", "components", "Hero.tsx"), []byte("hero"), 0644))

	require.NoError(t, CopyTree(src, dst, nil))

	content, err := os.ReadFile(filepath.Join(dst, "app", "App.tsx"))
	require.NoError(t, err)
	assert.Equal(t, "app", string(content))
	assert.FileExists(t, filepath.Join(dst, "app", "components", "Hero.tsx"))
}

func TestCopyTreeSkipsExcluded(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	require.NoError(t, os.MkdirAll(filepath.Join(src, "node_modules", "axios"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "node_modules", "axios", "index.js"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "App.tsx"), []byte("app"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, ".DS_Store"), []byte("junk"), 0644))

	require.NoError(t, CopyTree(src, dst, []string{"node_modules", ".DS_Store"}))

	assert.FileExists(t, filepath.Join(dst, "App.tsx"))
	assert.NoDirExists(t, filepath.Join(dst, "node_modules"))
	assert.NoFileExists(t, filepath.Join(dst, ".DS_Store"))
}

func TestGenerateFolderProject(t *testing.T) {
	out := t.TempDir()

	engine := NewTemplateEngine()
	data := map[string]string{"ProjectName": "my-site"}
	require.NoError(t, engine.GenerateFolder(TEMPLATES.PROJECT.Ref, out, data))

	// Templated files lose their .tmpl suffix and render data.
	pkg, err := os.ReadFile(filepath.Join(out, "package.json"))
	require.NoError(t, err)
	assert.Contains(t, string(pkg), `"name": "my-site"`)

	// Plain files are copied byte for byte.
	assert.FileExists(t, filepath.Join(out, "vite.config.ts"))
	assert.FileExists(t, filepath.Join(out, "tsconfig.json"))
	assert.FileExists(t, filepath.Join(out, "public", "vite.svg"))
	assert.NoFileExists(t, filepath.Join(out, "package.json.tmpl"))
}

func TestGenerateFolderSrc(t *testing.T) {
	out := t.TempDir()

	engine := NewTemplateEngine()
	require.NoError(t, engine.GenerateFolder(TEMPLATES.SRC.Ref, out, nil))

	assert.FileExists(t, filepath.Join(out, "main.tsx"))
	assert.FileExists(t, filepath.Join(out, "styles", "fonts.css"))
}

func TestGenerateFileRejectsDirectoryRef(t *testing.T) {
	engine := NewTemplateEngine()
	err := engine.GenerateFile(TEMPLATES.PROJECT.Ref, filepath.Join(t.TempDir(), "x"), nil)
	assert.Error(t, err)
}
