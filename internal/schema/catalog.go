package schema

import (
	"errors"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// ErrInheritanceCycle is returned when SUP references form a loop.
var ErrInheritanceCycle = errors.New("schema: inheritance cycle detected")

// Wildcard is the targetattr value matching every attribute.
const Wildcard = "*"

// Catalog indexes attribute types by OID, name and alias.
// A Catalog is not safe for concurrent modification.
type Catalog struct {
	types []*AttributeType
	index map[string]*AttributeType // lowercased OID and names
	known mapset.Set[string]        // lowercased names
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		index: make(map[string]*AttributeType),
		known: mapset.NewThreadUnsafeSet[string](),
	}
}

// Add registers an attribute type. A type with the OID of a registered one
// replaces it.
func (c *Catalog) Add(at *AttributeType) {
	if prev, ok := c.index[strings.ToLower(at.OID)]; ok && at.OID != "" {
		c.remove(prev)
	}

	c.types = append(c.types, at)
	if at.OID != "" {
		c.index[strings.ToLower(at.OID)] = at
	}
	for _, name := range at.Names {
		key := strings.ToLower(name)
		c.index[key] = at
		c.known.Add(key)
	}
}

func (c *Catalog) remove(at *AttributeType) {
	for i, t := range c.types {
		if t == at {
			c.types = append(c.types[:i], c.types[i+1:]...)
			break
		}
	}
	for key, t := range c.index {
		if t == at {
			delete(c.index, key)
		}
	}
	for _, name := range at.Names {
		c.known.Remove(strings.ToLower(name))
	}
}

// Merge adds every attribute type of other to c.
func (c *Catalog) Merge(other *Catalog) {
	for _, at := range other.types {
		c.Add(at)
	}
}

// Len returns the number of attribute types.
func (c *Catalog) Len() int {
	return len(c.types)
}

// Lookup retrieves an attribute type by name, alias or OID.
// Returns nil if not found.
func (c *Catalog) Lookup(nameOrOID string) *AttributeType {
	return c.index[strings.ToLower(baseName(nameOrOID))]
}

// Has reports whether name is a known attribute description. The wildcard
// is always known and attribute options such as ";binary" are ignored.
func (c *Catalog) Has(name string) bool {
	name = strings.TrimSpace(name)
	if name == Wildcard {
		return true
	}
	return c.known.Contains(strings.ToLower(baseName(name)))
}

// Names returns the primary names of all attribute types, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.types))
	for _, at := range c.types {
		names = append(names, at.Name)
	}
	sortFold(names)
	return names
}

// UserAttributes returns the attribute types a user entry ACI would
// target, sorted by name.
func (c *Catalog) UserAttributes() []*AttributeType {
	var out []*AttributeType
	for _, at := range c.types {
		if at.IsUserAttribute() {
			out = append(out, at)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// All returns every attribute type, sorted by name.
func (c *Catalog) All() []*AttributeType {
	out := make([]*AttributeType, len(c.types))
	copy(out, c.types)
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// resolveInheritance copies syntax and equality rule from superiors to the
// types that do not set them.
func (c *Catalog) resolveInheritance() error {
	resolved := make(map[*AttributeType]bool)

	var resolve func(at *AttributeType, visited map[*AttributeType]bool) error
	resolve = func(at *AttributeType, visited map[*AttributeType]bool) error {
		if resolved[at] {
			return nil
		}
		if visited[at] {
			return ErrInheritanceCycle
		}
		visited[at] = true

		if at.Superior != "" {
			if sup := c.Lookup(at.Superior); sup != nil {
				if err := resolve(sup, visited); err != nil {
					return err
				}
				if at.Syntax == "" {
					at.Syntax = sup.Syntax
				}
				if at.Equality == "" {
					at.Equality = sup.Equality
				}
			}
		}

		resolved[at] = true
		return nil
	}

	for _, at := range c.types {
		if err := resolve(at, make(map[*AttributeType]bool)); err != nil {
			return err
		}
	}
	return nil
}

// baseName strips attribute options: "cn;lang-en" becomes "cn".
func baseName(name string) string {
	if idx := strings.IndexByte(name, ';'); idx >= 0 {
		return name[:idx]
	}
	return name
}

func sortFold(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
}
