package hclenc

import (
	"fmt"
	"strings"

	"github.com/driftlab/tfvarsgen/internal/config"
)

// header opens every generated file. The application-level settings the
// comment refers to (WireGuard peers, Caddy, ...) are deliberately not
// converted; only infrastructure variables cross over to Terraform.
var header = []string{
	"# Auto-generated from config.yml",
	"# Do not edit directly - modify config.yml instead",
	"#",
	"# Only infrastructure variables are included here.",
	"# Application config (WireGuard, Caddy, etc.) is handled by Ansible.",
	"",
}

// fieldSpec maps one input field to its Terraform variable name.
type fieldSpec struct {
	key     string
	varName string
	// onPresence emits the field whenever its key exists, even with a null
	// or false value. The default is to emit only truthy values.
	onPresence bool
}

// sections is the whitelist of converted groups, in output order. Fields
// not listed here are never surfaced, whatever the input contains.
var sections = []struct {
	group  string
	fields []fieldSpec
}{
	{"azure", []fieldSpec{
		{key: "location", varName: "location"},
		{key: "resource_group", varName: "resource_group_name"},
		{key: "vm_size", varName: "vm_size"},
		{key: "use_static_ip", varName: "use_static_ip", onPresence: true},
		{key: "availability_zones", varName: "availability_zones"},
	}},
	{"ssh", []fieldSpec{
		{key: "admin_username", varName: "admin_username"},
		{key: "public_key_path", varName: "ssh_public_key_path"},
		{key: "allowed_ipv4", varName: "allowed_ssh_ipv4"},
		{key: "allowed_ipv6", varName: "allowed_ssh_ipv6", onPresence: true},
	}},
	{"network", []fieldSpec{
		{key: "vnet_address_space", varName: "vnet_address_space"},
		{key: "subnet_address", varName: "subnet_address"},
	}},
	{"wireguard", []fieldSpec{
		{key: "port", varName: "wireguard_port"},
	}},
}

// EncodeDocument converts a configuration document to tfvars text: the
// fixed header, then each whitelisted section in order, each followed by a
// blank line. Absent sections are omitted entirely.
func EncodeDocument(doc *config.Document) string {
	lines := append([]string{}, header...)

	for _, sec := range sections {
		m := doc.Section(sec.group)
		if m == nil {
			continue
		}
		for _, f := range sec.fields {
			n := config.Field(m, f.key)
			if f.onPresence {
				if n == nil {
					continue
				}
			} else if !config.Truthy(n) {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s = %s", f.varName, Value(n, 0)))
		}
		lines = append(lines, "")
	}

	// tags is emitted as a whole mapping, keys in document order.
	if tags, ok := doc.Group("tags"); ok {
		lines = append(lines, "tags = "+Value(tags, 0), "")
	}

	return strings.Join(lines, "\n")
}
