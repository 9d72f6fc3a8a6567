package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"--help"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "snippet")
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"--version"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "dev")
}

func TestRun_ToolchainMissing(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.yaml")
	content := "cargo: " + filepath.Join(tmp, "no-such-cargo") + "\ncacheDir: " + filepath.Join(tmp, "cache") + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))
	t.Setenv("EVALRS_CONFIG", cfgPath)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{`println!("hi")`}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr.String())
}

func TestRun_MalformedConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("cargo: [unclosed\n"), 0o600))
	t.Setenv("EVALRS_CONFIG", cfgPath)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"1 + 1"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "config")
}
