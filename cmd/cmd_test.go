package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "docsrv")
}

func TestValidateCommandSucceeds(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("{{docsrv_version}}"), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"validate", "--templates", root})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "catalog ok: 1 templates")
	assert.Contains(t, out.String(), "index.html")
}

func TestValidateCommandReportsBrokenTemplate(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "broken.html"), []byte("{{end}}"), 0644))

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"validate", "--templates", root})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.html")
}
