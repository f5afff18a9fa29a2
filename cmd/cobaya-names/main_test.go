package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/c360studio/cobayaconv/config"
	"github.com/c360studio/cobayaconv/vocabulary/cobaya"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithConfigRoot(t, t.TempDir(), args...)
}

func executeWithConfigRoot(t *testing.T, configRoot string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(configRoot)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestChi2Command(t *testing.T) {
	out, err := execute(t, "chi2", "planck_2018", "bao")
	require.NoError(t, err)
	assert.Equal(t, "chi2__planck_2018\nchi2__bao\n", out)
}

func TestMinusLogPriorCommand(t *testing.T) {
	out, err := execute(t, "minuslogprior", "H0")
	require.NoError(t, err)
	assert.Equal(t, "minuslogprior__H0\n", out)
}

func TestDecomposeCommand(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"chi2__planck_2018", "chi2 planck_2018\n", false},
		{"minuslogprior__0", "minuslogprior 0\n", false},
		{"weight", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "decompose", tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, cobaya.ErrInvalidName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSubfolderCommand(t *testing.T) {
	out, err := execute(t, "subfolder", "theory")
	require.NoError(t, err)
	assert.Equal(t, "theories\n", out)

	out, err = execute(t, "subfolder")
	require.NoError(t, err)
	assert.Equal(t, "sampler samplers\ntheory theories\nlikelihood likelihoods\n", out)

	_, err = execute(t, "subfolder", "prior")
	assert.ErrorIs(t, err, cobaya.ErrUnknownKind)
}

func TestReservedCommand(t *testing.T) {
	out, err := execute(t, "reserved", "input_params")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = execute(t, "reserved", "arbitrary_unrelated_name")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, err = execute(t, "reserved")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 5)
}

func TestColumnsCommand(t *testing.T) {
	out, err := execute(t, "columns", "--sampled", "H0,ombh2", "--likelihood", "bao")
	require.NoError(t, err)
	assert.Equal(t, "weight minuslogpost H0 ombh2 minuslogprior minuslogprior__0 chi2 chi2__bao\n", out)
}

func TestPackagesPathCommand(t *testing.T) {
	t.Setenv(cobaya.PackagesPathEnv, "")
	configRoot := t.TempDir()
	pkgs := filepath.Join(t.TempDir(), "packages")

	out, err := executeWithConfigRoot(t, configRoot, "packages-path", "--packages-path", pkgs, "--save")
	require.NoError(t, err)
	assert.Equal(t, pkgs+"\n", out)
	assert.FileExists(t, filepath.Join(configRoot, "cobaya", "config.yaml"))

	// Saved path is picked up without flags.
	out, err = executeWithConfigRoot(t, configRoot, "packages-path")
	require.NoError(t, err)
	assert.Equal(t, pkgs+"\n", out)

	envPath := filepath.Join(t.TempDir(), "env")
	t.Setenv(cobaya.PackagesPathEnv, envPath)
	out, err = executeWithConfigRoot(t, configRoot, "packages-path")
	require.NoError(t, err)
	assert.Equal(t, envPath+"\n", out)
}

func TestPackagesPathCommandUnset(t *testing.T) {
	if config.InContainer() {
		t.Skip("container packages path present")
	}
	t.Setenv(cobaya.PackagesPathEnv, "")

	_, err := execute(t, "packages-path")
	assert.ErrorContains(t, err, "no packages path")
}

func TestPackagesPathSaveRequiresPath(t *testing.T) {
	_, err := execute(t, "packages-path", "--save")
	assert.ErrorContains(t, err, "--save requires")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}
