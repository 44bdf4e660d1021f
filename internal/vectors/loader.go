package vectors

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseSuite parses and validates a vector suite from YAML.
func ParseSuite(data []byte) (*Suite, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}
	if len(doc.Content) == 0 {
		return nil, &LoadError{Message: "empty vector file"}
	}

	var suite Suite
	if err := doc.Content[0].Decode(&suite); err != nil {
		return nil, &LoadError{Message: "failed to decode suite", Cause: err}
	}
	if len(suite.Vectors) == 0 {
		return nil, &LoadError{Message: "suite must have at least one vector"}
	}

	lines := vectorLines(doc.Content[0])
	seen := make(map[string]bool, len(suite.Vectors))
	for i := range suite.Vectors {
		v := &suite.Vectors[i]
		if i < len(lines) {
			v.line = lines[i]
		}
		if err := validateVector(*v); err != nil {
			return nil, &LoadError{Line: v.line, Message: err.Error()}
		}
		if seen[v.ID] {
			return nil, &LoadError{Line: v.line, Message: fmt.Sprintf("duplicate vector id %q", v.ID)}
		}
		seen[v.ID] = true
	}
	return &suite, nil
}

// LoadSuite reads and parses a vector file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	suite, err := ParseSuite(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	return suite, nil
}

// vectorLines returns the source line of each item under the "vectors" key.
func vectorLines(root *yaml.Node) []int {
	if root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "vectors" {
			continue
		}
		seq := root.Content[i+1]
		lines := make([]int, len(seq.Content))
		for j, item := range seq.Content {
			lines[j] = item.Line
		}
		return lines
	}
	return nil
}

func validateVector(v Vector) error {
	if v.ID == "" {
		return errors.New("vector id is required")
	}
	if v.Packet == "" && !(v.Op == OpDecode && v.Error == ErrorInvalidInputShape) {
		return fmt.Errorf("vector %s: packet is required", v.ID)
	}

	switch v.Op {
	case OpEncode:
		if v.Message == nil {
			return fmt.Errorf("vector %s: encode needs a message", v.ID)
		}
		if v.Error != "" {
			return fmt.Errorf("vector %s: encode never fails, error is not allowed", v.ID)
		}
	case OpDecode:
		if (v.Message == nil) == (v.Error == "") {
			return fmt.Errorf("vector %s: decode needs exactly one of message or error", v.ID)
		}
		switch v.Error {
		case "", ErrorInvalidInputShape, ErrorUnknownFieldCode:
		default:
			return fmt.Errorf("vector %s: unknown error name %q", v.ID, v.Error)
		}
	default:
		return fmt.Errorf("vector %s: op must be %q or %q, got %q", v.ID, OpEncode, OpDecode, v.Op)
	}
	return nil
}
