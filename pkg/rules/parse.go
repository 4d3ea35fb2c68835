package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFile reads a rule specification file and returns the declared rules
// in file order. The format is chosen by extension: .yaml/.yml or .json.
// Any malformed rule is a fatal parse error; nothing is silently skipped.
func ParseFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported rules file extension %q (want .yaml, .yml or .json)", filepath.Ext(path))
	}
}

// ParseYAML parses a YAML list of rule objects.
func ParseYAML(data []byte) ([]Rule, error) {
	var list []Rule
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	return validateAll(list)
}

// ParseJSON parses a JSON list of rule objects.
func ParseJSON(data []byte) ([]Rule, error) {
	var list []Rule
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	return validateAll(list)
}

func validateAll(list []Rule) ([]Rule, error) {
	for i, r := range list {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
	}
	return list, nil
}
