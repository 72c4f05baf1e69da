/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/figgo/figgo/core/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "figgo",
	Short: "Scaffold standalone web projects from Figma Make exports.",
	Long: `Figgo turns a Figma Make export into a standalone Vite + React project.
It detects the npm packages and UI-kit components your code actually
imports, installs them, and prunes the component files you never use.`,
}

var (
	logfile string
	verbose bool
	noColor bool
)

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// setupLogging applies the persistent flags; every command calls it first.
func setupLogging() {
	logger.SetVerbose(verbose)
	if noColor {
		logger.SetNoColor(true)
		color.NoColor = true
	}
	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			logger.Warn("Could not open logfile %s: %v", logfile, err)
			return
		}
		logger.AddWriterForAll(f)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}
