/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/figgo/figgo/core/analyzer"
	"github.com/figgo/figgo/core/cache"
	"github.com/figgo/figgo/core/config"
	"github.com/figgo/figgo/core/logger"
	"github.com/figgo/figgo/core/models"
	"github.com/figgo/figgo/core/scanner"
	"github.com/figgo/figgo/core/watcher"
	"github.com/spf13/cobra"
)

var watch bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <src-folder>",
	Short: "Report the dependencies a Figma Make export uses",
	Long: `Scans the export's component files and prints the npm packages and
UI-kit components the code imports, without scaffolding anything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		logger.Debug("analyze called")

		srcPath, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve source folder: %w", err)
		}
		if _, err := os.Stat(srcPath); err != nil {
			return fmt.Errorf("source folder does not exist: %s", srcPath)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		runAnalysis := func() (*models.Report, error) {
			return analyzer.New(srcPath, cfg).Analyze()
		}

		report, err := runAnalysis()
		if err != nil {
			return fmt.Errorf("failed to analyze dependencies: %w", err)
		}
		printReport(report)

		if !watch {
			return nil
		}

		// Prime the cache so the first change event compares against the
		// state we just reported.
		contentCache := cache.GetContentCache()
		contentCache.UpdateAll(analyzedFiles(srcPath))

		fw, err := watcher.New(srcPath, cfg.Copy.Exclude)
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		defer fw.Close()

		fw.OnChange = func() error {
			if !contentCache.UpdateAll(analyzedFiles(srcPath)) {
				logger.Debug("No content changes, skipping re-analysis")
				return nil
			}
			report, err := runAnalysis()
			if err != nil {
				return err
			}
			printReport(report)
			return nil
		}

		logger.Info("Watching %s for changes...", srcPath)
		return fw.Watch()
	},
}

// analyzedFiles lists every file whose content feeds the analysis.
func analyzedFiles(srcPath string) []string {
	componentsDir := filepath.Join(srcPath, "app", "components")
	return scanner.ListSourceFiles(componentsDir, scanner.SourceExtensions)
}

func printReport(report *models.Report) {
	heading := color.New(color.FgBlue, color.Bold)

	heading.Printf("\nnpm packages (%d)\n", len(report.NpmPackages))
	for _, pkg := range report.NpmPackages {
		fmt.Printf("  %s\n", pkg)
	}

	heading.Printf("\nUI components (%d)\n", len(report.UIComponents))
	for _, comp := range report.UIComponents {
		fmt.Printf("  %s\n", comp)
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&watch, "watch", false, "Re-analyze when the export changes")
}
