package vectors

import (
	"strconv"
	"strings"
)

// Suite is a named list of conformance vectors.
type Suite struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Vectors     []Vector `yaml:"vectors"`
}

// Op is the codec operation a vector exercises.
type Op string

const (
	OpEncode Op = "encode"
	OpDecode Op = "decode"
)

// Expected error names used in vector files.
const (
	ErrorInvalidInputShape = "invalid_input_shape"
	ErrorUnknownFieldCode  = "unknown_field_code"
)

// Vector is a single conformance check.
//
// An encode vector supplies Message and the expected Packet. A decode vector
// supplies Packet and either the expected Message or the expected Error.
type Vector struct {
	ID          string       `yaml:"id"`
	Description string       `yaml:"description,omitempty"`
	Op          Op           `yaml:"op"`
	Message     *MessageSpec `yaml:"message,omitempty"`

	// Packet is hex ("4A 00 78") or binary groups.
	Packet string `yaml:"packet"`

	Error string `yaml:"error,omitempty"`

	// Field and Code narrow an unknown_field_code expectation.
	Field string `yaml:"field,omitempty"`
	Code  *uint8 `yaml:"code,omitempty"`

	// line is the position of the vector in its source file.
	line int
}

// Line returns the 1-based line of the vector in its file, or 0.
func (v Vector) Line() int {
	return v.line
}

// MessageSpec names message fields the way an operator types them.
type MessageSpec struct {
	Kind      string `yaml:"kind"`
	Conductor string `yaml:"conductor"`
	Target    string `yaml:"target"`
	Payload   uint16 `yaml:"payload,omitempty"`
}

// LoadError describes a vector file that could not be loaded.
type LoadError struct {
	File string

	// Line is 0 when unknown.
	Line int

	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.File)
	if e.Line > 0 {
		sb.WriteString(":" + strconv.Itoa(e.Line))
	}
	sb.WriteString(": " + e.Message)
	if e.Cause != nil {
		sb.WriteString(": " + e.Cause.Error())
	}
	return sb.String()
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
