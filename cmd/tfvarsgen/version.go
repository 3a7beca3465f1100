package main

import (
	"fmt"

	"github.com/driftlab/tfvarsgen/internal/git"
	"github.com/spf13/cobra"
)

// Version subcommand
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tfvarsgen version %s\n", version)

		if verbose {
			fmt.Printf("  Build time: %s\n", buildTime)
			fmt.Printf("  Git commit: %s\n", gitCommit)

			// Dev builds carry no stamped commit; read it from the checkout.
			if version == "dev" {
				if info, err := git.GetRepoInfo("."); err == nil {
					state := ""
					if info.IsDirty {
						state = " (dirty)"
					}
					fmt.Printf("  Working tree: %s@%s%s\n", info.Branch, info.CommitHash, state)
				}
			}
		}
	},
}
