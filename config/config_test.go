package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sghaida/euclid/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "euclid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Valid(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
credentials:
  student_id: "w1234567"
  secret_key: "hunter2"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "w1234567", cfg.Credentials.StudentID)
	assert.Equal(t, "hunter2", cfg.Credentials.SecretKey)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "credentials: [not a mapping")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestLoad_MissingFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
	}{
		{name: "empty_file", content: ""},
		{name: "no_secret_key", content: "credentials:\n  student_id: \"w1\"\n"},
		{name: "no_student_id", content: "credentials:\n  secret_key: \"sk\"\n"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(writeConfig(t, tc.content))
			assert.ErrorIs(t, err, config.ErrMissingCredentials)
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(config.EnvStudentID, "w7654321")
	t.Setenv(config.EnvSecretKey, "sk-env")

	cfg := config.FromEnv()
	assert.Equal(t, "w7654321", cfg.Credentials.StudentID)
	assert.Equal(t, "sk-env", cfg.Credentials.SecretKey)
}

func TestFromEnv_Unset(t *testing.T) {
	t.Setenv(config.EnvStudentID, "")
	t.Setenv(config.EnvSecretKey, "")

	cfg := config.FromEnv()
	assert.Empty(t, cfg.Credentials.StudentID)
	assert.Empty(t, cfg.Credentials.SecretKey)
}
