package output

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/c360studio/cobayaconv/vocabulary/cobaya"
	"gopkg.in/yaml.v3"
)

// DumpYAML encodes an input dictionary with its top-level blocks in the
// conventional order. Unknown blocks follow, alphabetically.
func DumpYAML(info map[string]any) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range orderBlocks(info) {
		var value yaml.Node
		if err := value.Encode(info[key]); err != nil {
			return nil, fmt.Errorf("encode block %s: %w", key, err)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&value)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteInput writes info to the input file, creating the output folder.
func (o *Output) WriteInput(info map[string]any) error {
	return o.writeYAML(o.InputFile(), info)
}

// WriteUpdated writes info to the updated input file.
func (o *Output) WriteUpdated(info map[string]any) error {
	return o.writeYAML(o.UpdatedFile(), info)
}

func (o *Output) writeYAML(path string, info map[string]any) error {
	data, err := DumpYAML(info)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(o.folder, 0755); err != nil {
		return fmt.Errorf("failed to create output folder: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	o.logger.Debug("Wrote input file", slog.String("path", path))
	return nil
}

// orderBlocks returns the keys of info in the conventional dump order,
// then alphabetically for unknown blocks.
func orderBlocks(info map[string]any) []string {
	orderMap := make(map[string]int)
	for i, name := range cobaya.DumpOrder() {
		orderMap[name] = i
	}

	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		orderI, okI := orderMap[keys[i]]
		orderJ, okJ := orderMap[keys[j]]

		if okI && okJ {
			return orderI < orderJ
		}
		if okI {
			return true
		}
		if okJ {
			return false
		}
		return keys[i] < keys[j]
	})

	return keys
}
