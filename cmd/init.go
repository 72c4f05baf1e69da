/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/figgo/figgo/core/analyzer"
	"github.com/figgo/figgo/core/config"
	"github.com/figgo/figgo/core/installer"
	"github.com/figgo/figgo/core/logger"
	"github.com/figgo/figgo/core/scaffold"
	"github.com/figgo/figgo/core/usage"
	"github.com/spf13/cobra"
)

var (
	output      string
	keepUnused  bool
	force       bool
	skipInstall bool
)

var initCmd = &cobra.Command{
	Use:   "init <src-folder>",
	Short: "Set up a project from a Figma Make export",
	Long: `Creates a standalone Vite project from a Figma Make export: stages the
project template, copies the export into src/, installs the detected
dependencies, and removes unused UI-kit components.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		logger.Debug("init called")

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

		if output == "" {
			output = promptProjectName(cfg.ProjectName)
		}
		outputPath, err := filepath.Abs(output)
		if err != nil {
			return fmt.Errorf("failed to resolve output folder: %w", err)
		}

		if _, err := os.Stat(outputPath); err == nil {
			if !force {
				fmt.Printf("Directory %s already exists. Use --force to overwrite.\n", filepath.Base(outputPath))
				return nil
			}
			logger.Debug("Directory %s already exists. Overwriting.", outputPath)
			if err := clearOutputDir(outputPath); err != nil {
				return err
			}
		}

		heading := color.New(color.FgBlue, color.Bold)
		success := color.New(color.FgGreen)

		heading.Println("\nFiggo Setup")

		fmt.Println("Analyzing dependencies...")
		deps, err := analyzer.New(srcPath, cfg).Analyze()
		if err != nil {
			return fmt.Errorf("failed to analyze dependencies: %w", err)
		}
		fmt.Printf("Found %d npm packages\n", len(deps.NpmPackages))
		fmt.Printf("Found %d UI components\n", len(deps.UIComponents))

		if err := os.MkdirAll(outputPath, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create project folder: %w", err)
		}

		templateData := map[string]string{
			"ProjectName": strings.ToLower(filepath.Base(outputPath)),
		}

		engine := scaffold.NewTemplateEngine()
		if err := engine.GenerateFolder(scaffold.TEMPLATES.PROJECT.Ref, outputPath, templateData); err != nil {
			return fmt.Errorf("failed to stage project template: %w", err)
		}
		success.Println("✓ Staged project template")

		if err := scaffold.CopyTree(srcPath, filepath.Join(outputPath, "src"), cfg.Copy.Exclude); err != nil {
			return fmt.Errorf("failed to copy source folder: %w", err)
		}
		if err := engine.GenerateFolder(scaffold.TEMPLATES.SRC.Ref, filepath.Join(outputPath, "src"), templateData); err != nil {
			return fmt.Errorf("failed to stage entry point: %w", err)
		}
		success.Println("✓ Copied src folder and added entry point main.tsx")

		if !skipInstall && !cfg.Installer.Skip {
			inst := installer.New(outputPath, cfg)

			if err := inst.InstallBase(); err != nil {
				return fmt.Errorf("failed to install base dependencies: %w", err)
			}
			success.Println("✓ Project initialized")

			if err := inst.InstallTailwind(); err != nil {
				return fmt.Errorf("failed to install Tailwind: %w", err)
			}
			success.Println("✓ Tailwind CSS v4 installed")

			if err := inst.InstallPackages(deps.NpmPackages); err != nil {
				logger.Error("Install failed: %v. Run '%s install' manually in the folder.", err, cfg.Installer.Command)
			} else {
				success.Printf("✓ Installed: %s\n", strings.Join(deps.NpmPackages, ", "))
			}
		}

		if !keepUnused {
			removed, err := usage.New(outputPath).RemoveUnused()
			if err != nil {
				return fmt.Errorf("failed to remove unused components: %w", err)
			}
			if removed > 0 {
				success.Printf("✓ Removed %d unused components\n", removed)
			}
		}

		success.Printf("\n✓ Project ready at: %s\n\n", outputPath)
		fmt.Println("To start developing:")
		fmt.Printf("  cd %s\n", output)
		fmt.Printf("  %s run dev\n\n", cfg.Installer.Command)

		return nil
	},
}

// clearOutputDir removes an existing output directory before staging. A
// partial removal must abort the run rather than stage over leftovers.
func clearOutputDir(outputPath string) error {
	if err := os.RemoveAll(outputPath); err != nil {
		return fmt.Errorf("failed to remove existing directory %s: %w", outputPath, err)
	}
	return nil
}

func promptProjectName(defaultName string) string {
	fmt.Printf("Enter a name for your project folder [%s]: ", defaultName)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return defaultName
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultName
	}
	return line
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&output, "output", "o", "", "Output directory name")
	initCmd.Flags().BoolVar(&keepUnused, "keep-unused", false, "Keep unused components")
	initCmd.Flags().BoolVar(&force, "force", false, "Force overwrite existing files")
	initCmd.Flags().BoolVar(&skipInstall, "skip-install", false, "Skip package installation")
}
