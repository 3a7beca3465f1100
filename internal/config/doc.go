// Package config loads and validates the YAML infrastructure configuration
// that tfvarsgen converts to Terraform variables.
//
// The configuration is an untyped tree with a handful of recognized
// top-level groups (azure, ssh, network, wireguard, tags). Rather than
// decoding into structs, the package keeps the parsed [yaml.Node] tree
// inside a [Document]: node access preserves the order mapping keys appear
// in the file, which the converter relies on when re-emitting the tags
// mapping, and unknown fields simply stay untouched in the tree.
//
// # Loading
//
//	doc, err := config.LoadDocument("config.yml")
//	if err != nil {
//	    // file missing or YAML malformed
//	}
//
// # Validation
//
// Document.Validate runs a fixed set of pre-flight rules against the ssh
// group and returns all failures as human-readable problem strings:
//
//	for _, problem := range doc.Validate() {
//	    fmt.Fprintf(os.Stderr, "  - %s\n", problem)
//	}
//
// The rules guard against placeholder values left over from the example
// config, well-known default admin usernames, and SSH allow-lists broader
// than a single host. Problems are returned, never raised as errors; the
// caller decides whether they block conversion.
package config
