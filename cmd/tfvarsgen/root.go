package main

import (
	"github.com/driftlab/tfvarsgen/internal/cli"
	"github.com/spf13/cobra"
)

var (
	// Global flags (available to all commands)
	verbose bool

	// Command-specific flags
	outputPath   string
	validateOnly bool
)

// rootCmd converts a config file when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "tfvarsgen <config-file>",
	Short: "Convert a YAML infrastructure config to Terraform tfvars",
	Long: `tfvarsgen converts config.yml to Terraform tfvars format.

Only infrastructure variables needed by Terraform are emitted: Azure
location and sizing, SSH access rules, network addressing, the WireGuard
port, and tags. Application configuration is handled by Ansible and never
crosses over.

Examples:
  tfvarsgen config.yml > terraform/terraform.tfvars
  tfvarsgen config.yml --output terraform/terraform.tfvars
  tfvarsgen config.yml --validate`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.ConvertOptions{
			ConfigPath:   args[0],
			OutputPath:   outputPath,
			ValidateOnly: validateOnly,
			Verbose:      verbose,
		}
		cli.ConvertRun(opts)
	},
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")

	// Convert flags
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: stdout)")
	rootCmd.Flags().BoolVarP(&validateOnly, "validate", "v", false, "Validate config only, produce no output")

	// Add subcommands to root
	rootCmd.AddCommand(versionCmd)
}
