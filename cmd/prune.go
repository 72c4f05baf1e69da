package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/figgo/figgo/core/logger"
	"github.com/figgo/figgo/core/usage"
	"github.com/spf13/cobra"
)

var dryRun bool

var pruneCmd = &cobra.Command{
	Use:   "prune [project-dir]",
	Short: "Remove unused UI-kit components from a project",
	Long: `Walks the project's entry files, follows their component imports, and
deletes every UI-kit component file nothing reaches. Defaults to the
current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		logger.Debug("prune called")

		projectDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		if len(args) == 1 {
			projectDir, err = filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve project directory: %w", err)
			}
		}
		if _, err := os.Stat(projectDir); err != nil {
			return fmt.Errorf("project directory does not exist: %s", projectDir)
		}

		var opts []usage.Option
		if dryRun {
			opts = append(opts, usage.WithDryRun())
		}

		removed, err := usage.New(projectDir, opts...).RemoveUnused()
		if err != nil {
			return fmt.Errorf("failed to remove unused components: %w", err)
		}

		success := color.New(color.FgGreen)
		if dryRun {
			success.Printf("✓ %d unused components would be removed\n", removed)
		} else {
			success.Printf("✓ Removed %d unused components\n", removed)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(pruneCmd)

	pruneCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report unused components without deleting them")
}
