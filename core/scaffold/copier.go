package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/figgo/figgo/core/logger"
)

// CopyTree copies the export tree at srcDir into dstDir, skipping the
// excluded directory names wherever they appear.
func CopyTree(srcDir, dstDir string, exclude []string) error {
	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}

	return filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return os.MkdirAll(dstDir, os.ModePerm)
		}

		if _, skip := excluded[info.Name()]; skip {
			logger.Debug("Skipping excluded entry: %s", relPath)
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		targetPath := filepath.Join(dstDir, relPath)

		if info.IsDir() {
			return os.MkdirAll(targetPath, os.ModePerm)
		}

		return copyFile(path, targetPath)
	})
}

func copyFile(srcPath, dstPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", srcPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	if err := os.WriteFile(dstPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dstPath, err)
	}

	return nil
}
