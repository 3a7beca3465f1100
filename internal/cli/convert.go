// Package cli implements the command entry points. Functions here print to
// the user and call os.Exit; everything below them returns errors.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/driftlab/tfvarsgen/internal/config"
	"github.com/driftlab/tfvarsgen/internal/hclenc"
)

// ConvertOptions holds configuration for the convert (root) command
type ConvertOptions struct {
	ConfigPath   string
	OutputPath   string
	ValidateOnly bool
	Verbose      bool
}

// ConvertRun loads the configuration, reports validation problems, and
// writes the converted tfvars to the output file or stdout. In validate-only
// mode no output is produced and any problem is fatal; in conversion mode
// problems are warnings (Terraform validates again on apply).
func ConvertRun(opts ConvertOptions) {
	doc, err := config.LoadDocument(opts.ConfigPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error: config file not found: %s\n", opts.ConfigPath)
			fmt.Fprintln(os.Stderr, "Copy config.yml.example to config.yml and customize it.")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "Loaded configuration: %s\n", opts.ConfigPath)
	}

	problems := doc.Validate()
	if len(problems) > 0 {
		fmt.Fprintln(os.Stderr, "Configuration errors:")
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "  - %s\n", p)
		}
		if opts.ValidateOnly {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "\nContinuing anyway (Terraform will also validate)...")
	} else if opts.ValidateOnly {
		fmt.Println("Configuration is valid.")
		return
	}

	tfvars := hclenc.EncodeDocument(doc)

	if opts.OutputPath != "" {
		// Single write after full assembly; a failed run leaves no partial file
		// behind from this process.
		if err := os.WriteFile(opts.OutputPath, []byte(tfvars), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", opts.OutputPath, err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Generated: %s\n", opts.OutputPath)
	} else {
		fmt.Println(tfvars)
	}
}
