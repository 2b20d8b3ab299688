package settings

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// Catalog is the ordered, deduplicated list of known keys.
type Catalog struct {
	keys   []Key
	labels []string
}

// BuildCatalog merges the tables into one catalog.
//
// Tables are visited in argument order and a key whose Name was already
// seen is dropped, so earlier tables take precedence. The result is sorted
// by namespace label, then by name.
func BuildCatalog(tables ...Table) *Catalog {
	seen := make(map[string]struct{})
	var keys []Key
	for _, t := range tables {
		for _, k := range t.Keys() {
			if _, dup := seen[k.Name]; dup {
				continue
			}
			seen[k.Name] = struct{}{}
			keys = append(keys, k)
		}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		li, lj := keys[i].Namespace.Label(), keys[j].Namespace.Label()
		if li != lj {
			return li < lj
		}
		return keys[i].Name < keys[j].Name
	})

	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = k.Label()
	}

	return &Catalog{keys: keys, labels: labels}
}

// DefaultCatalog builds the catalog from the built-in Global and System
// tables, preferring Global.
func DefaultCatalog() *Catalog {
	return BuildCatalog(DefaultTables()...)
}

// Len returns the number of keys.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// At returns the key at position i.
func (c *Catalog) At(i int) Key {
	return c.keys[i]
}

// Keys returns a copy of the ordered keys.
func (c *Catalog) Keys() []Key {
	out := make([]Key, len(c.keys))
	copy(out, c.keys)
	return out
}

// Labels returns the display labels in catalog order.
func (c *Catalog) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Find looks a key up by constant name, falling back to the stored
// setting name.
func (c *Catalog) Find(name string) (Key, bool) {
	for _, k := range c.keys {
		if k.Name == name {
			return k, true
		}
	}
	for _, k := range c.keys {
		if k.Setting == name {
			return k, true
		}
	}
	return Key{}, false
}

// Filter returns the keys that belong to ns, in catalog order.
func (c *Catalog) Filter(ns Namespace) []Key {
	var out []Key
	for _, k := range c.keys {
		if k.Namespace == ns {
			out = append(out, k)
		}
	}
	return out
}

// Search returns catalog indices whose label fuzzy-matches query, best
// match first. An empty query returns every index in catalog order.
func (c *Catalog) Search(query string) []int {
	if query == "" {
		all := make([]int, len(c.keys))
		for i := range all {
			all[i] = i
		}
		return all
	}

	matches := fuzzy.Find(query, c.labels)
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	return out
}
