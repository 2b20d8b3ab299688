package settings

import "github.com/dongho-jung/droidset/internal/constants"

// Key identifies one settings entry.
//
// Name is the identifier of the platform constant (AIRPLANE_MODE_ON) and
// Setting is the constant's value, the name the provider stores the entry
// under (airplane_mode_on). Two keys with the same Name are the same key
// regardless of namespace.
type Key struct {
	Namespace Namespace
	Name      string
	Setting   string
}

// Label returns the "<namespace> - <name>" form shown in the key list.
func (k Key) Label() string {
	return k.Namespace.Label() + constants.LabelSep + k.Name
}

// Same reports whether k and other denote the same catalog entry.
func (k Key) Same(other Key) bool {
	return k.Name == other.Name
}

// Entry is one string constant declared by a namespace.
type Entry struct {
	Name    string
	Setting string
}

// Table is the statically declared list of string constants of one
// namespace.
type Table struct {
	Namespace Namespace
	Entries   []Entry
}

// Keys wraps every entry of the table as a Key tagged with its namespace.
func (t Table) Keys() []Key {
	keys := make([]Key, 0, len(t.Entries))
	for _, e := range t.Entries {
		keys = append(keys, Key{Namespace: t.Namespace, Name: e.Name, Setting: e.Setting})
	}
	return keys
}
