package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/figgo/figgo/core/logger"
)

// TemplateRef points at an embedded template file or directory.
type TemplateRef struct {
	Path  string
	IsDir bool
}

func (tr TemplateRef) IsFile() bool {
	return !tr.IsDir
}

func (tr TemplateRef) IsDirectory() bool {
	return tr.IsDir
}

type TemplateEngine struct {
	funcMap template.FuncMap
}

func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"upper":     strings.ToUpper,
		"lower":     strings.ToLower,
		"title":     toTitle,
		"trim":      strings.TrimSpace,
		"replace":   strings.ReplaceAll,
		"join":      strings.Join,
		"hasPrefix": strings.HasPrefix,
		"hasSuffix": strings.HasSuffix,

		"now":  time.Now,
		"date": func(t time.Time) string { return t.Format("2006-01-02") },

		"default": func(def, val interface{}) interface{} {
			if val == nil || val == "" {
				return def
			}
			return val
		},
	}
}

func toTitle(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func NewTemplateEngine() *TemplateEngine {
	return &TemplateEngine{
		funcMap: defaultFuncMap(),
	}
}

func (te *TemplateEngine) AddFunc(name string, fn interface{}) {
	te.funcMap[name] = fn
}

// GenerateFile renders a single template to outputPath.
func (te *TemplateEngine) GenerateFile(templateRef TemplateRef, outputPath string, data interface{}) error {
	if templateRef.IsDirectory() {
		return fmt.Errorf("cannot generate file from directory reference: %s", templateRef.Path)
	}

	templatePath := filepath.Join("templates", templateRef.Path)
	return te.generateFileFromPath(templatePath, outputPath, data)
}

// GenerateFolder renders an embedded template directory into outputDir.
// Files without a .tmpl suffix are copied byte for byte.
func (te *TemplateEngine) GenerateFolder(templateRef TemplateRef, outputDir string, data interface{}) error {
	if templateRef.IsFile() {
		return fmt.Errorf("cannot generate folder from file reference: %s", templateRef.Path)
	}

	templateDir := filepath.Join("templates", templateRef.Path)
	logger.Debug("Generating folder from template reference: %s", templateDir)

	return fs.WalkDir(TemplateFS, templateDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == templateDir {
			return nil
		}

		relPath, err := filepath.Rel(templateDir, path)
		if err != nil {
			return err
		}

		outputPath := filepath.Join(outputDir, relPath)

		if d.IsDir() {
			return os.MkdirAll(outputPath, os.ModePerm)
		}

		logger.Debug("Generating file from path: %s", path)
		return te.generateFileFromPath(path, outputPath, data)
	})
}

func (te *TemplateEngine) generateFileFromPath(templatePath, outputPath string, data interface{}) error {
	content, err := TemplateFS.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read template file %s: %w", templatePath, err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if !strings.HasSuffix(templatePath, ".tmpl") {
		return os.WriteFile(outputPath, content, 0644)
	}

	outputPath = strings.TrimSuffix(outputPath, ".tmpl")

	tmpl, err := template.New(filepath.Base(templatePath)).Funcs(te.funcMap).Parse(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", templatePath, err)
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	defer outputFile.Close()

	if err := tmpl.Execute(outputFile, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", templatePath, err)
	}

	return nil
}
