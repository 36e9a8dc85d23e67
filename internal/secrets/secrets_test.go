// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Credentials
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "ncbi-api-key", "  ak_abc123  \n")
				writeFile(t, dir, "contact-email", "user@example.com\n")
				return dir
			},
			want: Credentials{APIKey: "ak_abc123", Email: "user@example.com"},
		},
		{
			name: "returns zero credentials for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: Credentials{},
		},
		{
			name: "missing files are not errors",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "contact-email", "user@example.com")
				return dir
			},
			want: Credentials{Email: "user@example.com"},
		},
		{
			name: "unrelated files are ignored",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "ncbi-api-key", "ak_real")
				writeFile(t, dir, "semantic-scholar-api-key", "sk_other")
				writeFile(t, dir, ".gitkeep", "")
				return dir
			},
			want: Credentials{APIKey: "ak_real"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			got, err := Load(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ncbi-api-key", "ak_from_file")
	writeFile(t, dir, "contact-email", "file@example.com")

	t.Setenv("NCBI_API_KEY", "ak_from_env")
	t.Setenv("NCBI_CONTACT_EMAIL", " env@example.com ")

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "ak_from_env", got.APIKey)
	assert.Equal(t, "env@example.com", got.Email)
}

func TestLoadEnvWithoutDirectory(t *testing.T) {
	t.Setenv("NCBI_API_KEY", "ak_env_only")

	got, err := Load(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Equal(t, "ak_env_only", got.APIKey)
	assert.Empty(t, got.Email)
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
	dir := t.TempDir()
	badPath := filepath.Join(dir, "ncbi-api-key")
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading secret")
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
