package inspect

import (
	"strconv"
	"strings"

	"github.com/baton-protocol/baton-go/pkg/wire"
)

// normalizeName folds case and drops separators so that "SET_TEMPO",
// "set-tempo" and "SetTempo" compare equal.
func normalizeName(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case '_', '-', ' ':
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// ResolveKind resolves a message kind name (case-insensitive, separators
// ignored) or its numeric code.
func ResolveKind(name string) (wire.MessageKind, bool) {
	key := normalizeName(name)
	for _, k := range wire.MessageKinds() {
		if normalizeName(k.String()) == key {
			return k, true
		}
	}
	if n, err := strconv.ParseUint(key, 10, 8); err == nil {
		k := wire.MessageKind(n)
		return k, k.IsValid()
	}
	return 0, false
}

// ResolveConductor resolves "C1".."C4" (case-insensitive) or the operator
// number 1-4. Operator numbers are 1-based; wire codes are 0-based.
func ResolveConductor(name string) (wire.ConductorID, bool) {
	key := normalizeName(name)
	for _, c := range wire.Conductors() {
		if strings.ToLower(c.String()) == key {
			return c, true
		}
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(wire.Conductors()) {
		return wire.ConductorID(n - 1), true
	}
	return 0, false
}

// ResolveTarget resolves a target group name or its code 0-7.
func ResolveTarget(name string) (wire.TargetGroup, bool) {
	key := normalizeName(name)
	for _, g := range wire.TargetGroups() {
		if normalizeName(g.String()) == key {
			return g, true
		}
	}
	if n, err := strconv.ParseUint(key, 10, 8); err == nil {
		g := wire.TargetGroup(n)
		return g, g.IsValid()
	}
	return 0, false
}

// KindNames returns the kind names in code order, for prompts and help text.
func KindNames() []string {
	kinds := wire.MessageKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

// TargetNames returns the target group names in code order.
func TargetNames() []string {
	groups := wire.TargetGroups()
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.String()
	}
	return names
}
