package version

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/baton-protocol/baton-go/pkg/wire"
)

//go:embed codetables/*.yaml
var codeTableFS embed.FS

// CodeTable lists the codes a protocol revision assigns to each header field.
type CodeTable struct {
	Version     string  `yaml:"version"`
	Description string  `yaml:"description"`
	Kinds       []Entry `yaml:"kinds"`
	Conductors  []Entry `yaml:"conductors"`
	Targets     []Entry `yaml:"targets"`

	// ReservedKinds are kind codes with no meaning in this revision.
	ReservedKinds []uint8 `yaml:"reserved_kinds"`
}

// Entry is a named code.
type Entry struct {
	Code uint8  `yaml:"code"`
	Name string `yaml:"name"`
}

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]*CodeTable)
)

// LoadCodeTable loads the embedded code table for a revision (e.g. "1.0").
func LoadCodeTable(ver string) (*CodeTable, error) {
	cacheMu.RLock()
	if t, ok := cache[ver]; ok {
		cacheMu.RUnlock()
		return t, nil
	}
	cacheMu.RUnlock()

	data, err := codeTableFS.ReadFile("codetables/" + ver + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("code table %q not found: %w", ver, err)
	}

	var t CodeTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing code table %q: %w", ver, err)
	}
	if err := checkTableVersion(t.Version); err != nil {
		return nil, err
	}

	cacheMu.Lock()
	cache[ver] = &t
	cacheMu.Unlock()
	return &t, nil
}

// checkTableVersion rejects a table whose revision cannot be read by a
// Current codec.
func checkTableVersion(ver string) error {
	tv, err := Parse(ver)
	if err != nil {
		return fmt.Errorf("code table: %w", err)
	}
	cur, err := Parse(Current)
	if err != nil {
		return err
	}
	if !cur.Compatible(tv) {
		return fmt.Errorf("code table %s is not compatible with protocol %s", tv, cur)
	}
	return nil
}

// LoadCurrentCodeTable loads the table for Current.
func LoadCurrentCodeTable() (*CodeTable, error) {
	return LoadCodeTable(Current)
}

// AvailableCodeTables returns the revisions with an embedded code table.
func AvailableCodeTables() ([]string, error) {
	entries, err := codeTableFS.ReadDir("codetables")
	if err != nil {
		return nil, fmt.Errorf("reading code tables: %w", err)
	}

	var versions []string
	for _, e := range entries {
		if name := e.Name(); strings.HasSuffix(name, ".yaml") {
			versions = append(versions, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(versions)
	return versions, nil
}

// ValidationResult holds the outcome of comparing a code table with the codec.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// Validate compares the table with the codes the wire package assigns.
// Every code must map to the same name in both, and reserved kind codes must
// be rejected by the codec.
func (t *CodeTable) Validate() ValidationResult {
	var result ValidationResult

	check := func(field wire.Field, entries []Entry, domain int, name func(uint8) string) {
		seen := make(map[uint8]bool)
		for _, e := range entries {
			if seen[e.Code] {
				result.Errors = append(result.Errors, fmt.Sprintf("%s code %d listed twice", field, e.Code))
			}
			seen[e.Code] = true
			if !field.IsAssigned(e.Code) {
				result.Errors = append(result.Errors, fmt.Sprintf("%s code %d (%s) not assigned by codec", field, e.Code, e.Name))
				continue
			}
			if got := name(e.Code); got != e.Name {
				result.Errors = append(result.Errors, fmt.Sprintf("%s code %d: table says %s, codec says %s", field, e.Code, e.Name, got))
			}
		}
		for code := 0; code < domain; code++ {
			if field.IsAssigned(uint8(code)) && !seen[uint8(code)] {
				result.Errors = append(result.Errors, fmt.Sprintf("%s code %d assigned by codec but missing from table", field, code))
			}
		}
	}

	check(wire.FieldKind, t.Kinds, 1<<wire.FieldKind.Width(), func(c uint8) string { return wire.MessageKind(c).String() })
	check(wire.FieldConductor, t.Conductors, 1<<wire.FieldConductor.Width(), func(c uint8) string { return wire.ConductorID(c).String() })
	check(wire.FieldTarget, t.Targets, 1<<wire.FieldTarget.Width(), func(c uint8) string { return wire.TargetGroup(c).String() })

	for _, code := range t.ReservedKinds {
		if wire.FieldKind.IsAssigned(code) {
			result.Errors = append(result.Errors, fmt.Sprintf("kind code %d is reserved but assigned by codec", code))
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}
