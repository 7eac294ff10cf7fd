package components

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/Rorical/RoriComplete/internal/config"
	"github.com/Rorical/RoriComplete/internal/models"
)

// DumpCompletion serializes the whole response for the raw payload view
func DumpCompletion(c models.Completion, format string) (string, error) {
	switch format {
	case config.DumpTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return "", fmt.Errorf("failed to encode toml: %w", err)
		}
		return buf.String(), nil
	case config.DumpYAML:
		data, err := yaml.Marshal(c)
		if err != nil {
			return "", fmt.Errorf("failed to encode yaml: %w", err)
		}
		return string(data), nil
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode json: %w", err)
	}
	return string(data), nil
}

// DumpInfo serializes a backend record keeping its field order
func DumpInfo(info models.BackendInfo, format string) (string, error) {
	switch format {
	case config.DumpTOML:
		// encoded field by field to keep the record order
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		for _, f := range info {
			if err := enc.Encode(map[string]string{f.Key: f.Value}); err != nil {
				return "", fmt.Errorf("failed to encode toml: %w", err)
			}
		}
		return buf.String(), nil
	case config.DumpYAML:
		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, f := range info {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: f.Key},
				&yaml.Node{Kind: yaml.ScalarNode, Value: f.Value},
			)
		}
		data, err := yaml.Marshal(node)
		if err != nil {
			return "", fmt.Errorf("failed to encode yaml: %w", err)
		}
		return string(data), nil
	}

	if len(info) == 0 {
		return "{}", nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Encode terminates every value with a newline
	encode := func(v string) error {
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		buf.Truncate(buf.Len() - 1)
		return nil
	}

	buf.WriteString("{\n")
	for i, f := range info {
		buf.WriteString("  ")
		if err := encode(f.Key); err != nil {
			return "", err
		}
		buf.WriteString(": ")
		if err := encode(f.Value); err != nil {
			return "", err
		}
		if i < len(info)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.String(), nil
}
