// ABOUTME: CLI command printing the build version.
// ABOUTME: Works without configuration so it never needs a credential.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mlb " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
