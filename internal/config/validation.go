package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Package-level validator used by Document.Validate.
var validate *validator.Validate

// placeholders are the sentinel values shipped in config.yml.example. A
// config still carrying one of them was never customized.
var placeholders = []string{"CHANGEME", "CHANGEME/32"}

// defaultAdminNames are usernames that ship as defaults on common VM images
// and are the first thing SSH brute-force scanners try. Matching is
// case-sensitive: these are the literal well-known spellings.
var defaultAdminNames = []string{"admin", "root", "azureuser", "ubuntu", "administrator"}

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("not_placeholder", validateNotPlaceholder); err != nil {
		panic(fmt.Errorf("register validator not_placeholder: %w", err))
	}
	if err := validate.RegisterValidation("not_default_admin", validateNotDefaultAdmin); err != nil {
		panic(fmt.Errorf("register validator not_default_admin: %w", err))
	}
}

// validateNotPlaceholder implements the "not_placeholder" tag: the value
// must not be one of the example-config sentinels.
func validateNotPlaceholder(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	for _, p := range placeholders {
		if s == p {
			return false
		}
	}
	return true
}

// validateNotDefaultAdmin implements the "not_default_admin" tag: the value
// must not be a well-known default admin username.
func validateNotDefaultAdmin(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	for _, name := range defaultAdminNames {
		if s == name {
			return false
		}
	}
	return true
}

// rule is one pre-flight check on a single document field. Rules are
// evaluated independently, never short-circuited, so one field can collect
// more than one problem.
type rule struct {
	field   string
	tag     string
	message string
	// skipEmpty skips the rule when the field is absent or empty; presence
	// is the concern of a separate rule.
	skipEmpty bool
}

var rules = []rule{
	{field: "ssh.admin_username", tag: "required,not_placeholder", message: "not set or still CHANGEME"},
	{field: "ssh.allowed_ipv4", tag: "required,not_placeholder", message: "not set or still CHANGEME"},
	{field: "ssh.admin_username", tag: "not_default_admin", message: "cannot be a common default name", skipEmpty: true},
	{field: "ssh.allowed_ipv4", tag: "endswith=/32", message: "must end with /32", skipEmpty: true},
}

// Validate runs every rule against the document and returns one problem
// string per failed rule, in rule order. An empty result means the
// configuration passed. Absent groups are treated as empty mappings, so a
// document with no ssh section reports missing fields instead of crashing.
func (d *Document) Validate() []string {
	var problems []string
	for _, r := range rules {
		value := d.stringAt(r.field)
		if r.skipEmpty && value == "" {
			continue
		}
		if err := validate.Var(value, r.tag); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %s", r.field, r.message))
		}
	}
	return problems
}

// stringAt resolves a "group.key" path to a scalar string, with "" for
// anything absent or non-scalar.
func (d *Document) stringAt(path string) string {
	group, key, _ := strings.Cut(path, ".")
	return StringField(d.Section(group), key)
}
