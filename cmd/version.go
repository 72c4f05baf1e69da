/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/figgo/figgo/core/version"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of Figgo",
	Long:  `Displays the version of Figgo.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Figgo %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
