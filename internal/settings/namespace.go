// Package settings implements the key catalog and typed access to Android
// system settings.
package settings

import (
	"fmt"
	"strings"
)

// Namespace is a named grouping of system settings.
type Namespace int

const (
	NamespaceGlobal Namespace = iota // Device-wide settings (Settings.Global)
	NamespaceSystem                  // Per-user system preferences (Settings.System)
)

// Namespaces returns every namespace in preference order. When a constant
// is declared in more than one namespace the earlier one wins.
func Namespaces() []Namespace {
	return []Namespace{NamespaceGlobal, NamespaceSystem}
}

// Label returns the display name used in key labels and for sorting.
func (n Namespace) Label() string {
	switch n {
	case NamespaceGlobal:
		return "Global"
	case NamespaceSystem:
		return "System"
	default:
		return fmt.Sprintf("Namespace(%d)", int(n))
	}
}

// Table returns the provider table name ("global", "system").
func (n Namespace) Table() string {
	return strings.ToLower(n.Label())
}

func (n Namespace) String() string {
	return n.Label()
}

// ParseNamespace accepts a label or table name in any case.
func ParseNamespace(s string) (Namespace, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global":
		return NamespaceGlobal, nil
	case "system":
		return NamespaceSystem, nil
	}
	return 0, fmt.Errorf("unknown namespace %q (want global or system)", s)
}
