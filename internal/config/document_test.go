package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustDoc parses inline YAML for tests.
func mustDoc(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := ParseDocument([]byte(src))
	require.NoError(t, err)
	return doc
}

func TestLoadDocument(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		tempDir := t.TempDir()
		path := filepath.Join(tempDir, "config.yml")

		configYAML := `azure:
  location: westeurope
ssh:
  admin_username: vpnops
`
		require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o644))

		doc, err := LoadDocument(path)
		require.NoError(t, err)
		assert.Equal(t, "westeurope", StringField(doc.Section("azure"), "location"))
		assert.Equal(t, "vpnops", StringField(doc.Section("ssh"), "admin_username"))
	})

	t.Run("file does not exist", func(t *testing.T) {
		_, err := LoadDocument(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("malformed YAML", func(t *testing.T) {
		tempDir := t.TempDir()
		path := filepath.Join(tempDir, "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("azure: [unclosed\n"), 0o644))

		_, err := LoadDocument(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse YAML")
	})

	t.Run("empty file", func(t *testing.T) {
		tempDir := t.TempDir()
		path := filepath.Join(tempDir, "config.yml")
		require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

		doc, err := LoadDocument(path)
		require.NoError(t, err)
		assert.Nil(t, doc.Section("azure"))
	})
}

func TestDocument_Section(t *testing.T) {
	doc := mustDoc(t, `azure:
  location: westeurope
wireguard: 51820
empty:
`)

	t.Run("present mapping", func(t *testing.T) {
		require.NotNil(t, doc.Section("azure"))
	})

	t.Run("absent group", func(t *testing.T) {
		assert.Nil(t, doc.Section("network"))
	})

	t.Run("non-mapping group is treated as absent", func(t *testing.T) {
		assert.Nil(t, doc.Section("wireguard"))
		assert.Nil(t, doc.Section("empty"))
	})

	t.Run("raw presence is still visible via Group", func(t *testing.T) {
		_, ok := doc.Group("wireguard")
		assert.True(t, ok)
		_, ok = doc.Group("network")
		assert.False(t, ok)
	})
}

func TestStringField(t *testing.T) {
	doc := mustDoc(t, `ssh:
  admin_username: vpnops
  allowed_ipv6: null
  port: 22
  keys: [a, b]
`)
	ssh := doc.Section("ssh")

	assert.Equal(t, "vpnops", StringField(ssh, "admin_username"))
	assert.Equal(t, "", StringField(ssh, "allowed_ipv6")) // explicit null
	assert.Equal(t, "", StringField(ssh, "missing"))
	assert.Equal(t, "", StringField(ssh, "keys")) // not a scalar
	assert.Equal(t, "22", StringField(ssh, "port"))
	assert.Equal(t, "", StringField(nil, "anything")) // nil-safe
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want bool
	}{
		{"null", "v:", false},
		{"false", "v: false", false},
		{"true", "v: true", true},
		{"zero", "v: 0", false},
		{"int", "v: 51820", true},
		{"zero float", "v: 0.0", false},
		{"float", "v: 1.5", true},
		{"empty string", `v: ""`, false},
		{"string", "v: westeurope", true},
		{"empty sequence", "v: []", false},
		{"sequence", "v: [1]", true},
		{"empty mapping", "v: {}", false},
		{"mapping", "v: {a: 1}", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustDoc(t, tc.yaml)
			n, ok := doc.Group("v")
			require.True(t, ok)
			assert.Equal(t, tc.want, Truthy(n))
		})
	}

	t.Run("absent node", func(t *testing.T) {
		assert.False(t, Truthy(nil))
	})
}
