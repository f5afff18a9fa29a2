package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func topLevelKeys(t *testing.T, data []byte) []string {
	t.Helper()
	var keys []string
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" || strings.HasPrefix(line, " ") || strings.HasPrefix(line, "-") {
			continue
		}
		keys = append(keys, strings.SplitN(line, ":", 2)[0])
	}
	return keys
}

func TestDumpYAMLOrder(t *testing.T) {
	info := map[string]any{
		"output":     "chains/test",
		"sampler":    map[string]any{"mcmc": nil},
		"params":     map[string]any{"H0": map[string]any{"prior": map[string]any{"min": 40, "max": 100}}},
		"likelihood": map[string]any{"planck_2018": nil},
		"theory":     map[string]any{"camb": nil},
		"debug":      true,
		"post":       map[string]any{"suffix": "x"},
		"prior":      map[string]any{"gauss": "lambda x: 0"},
	}

	data, err := DumpYAML(info)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"theory", "likelihood", "prior", "params", "sampler", "post", "debug", "output",
	}, topLevelKeys(t, data))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "chains/test", decoded["output"])
	assert.Equal(t, true, decoded["debug"])
}

func TestDumpYAMLEmpty(t *testing.T) {
	data, err := DumpYAML(map[string]any{})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Empty(t, decoded)
}

func TestWriteInput(t *testing.T) {
	dir := t.TempDir()
	o := New(filepath.Join(dir, "chains", "run"), nil)

	require.NoError(t, o.WriteInput(map[string]any{"likelihood": map[string]any{"bao": nil}}))
	require.NoError(t, o.WriteUpdated(map[string]any{"likelihood": map[string]any{"bao": nil}, "debug": false}))

	data, err := os.ReadFile(filepath.Join(dir, "chains", "run.input.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "likelihood:")

	assert.FileExists(t, filepath.Join(dir, "chains", "run.updated.yaml"))
}
