package aci

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRight is returned for an unknown right keyword.
var ErrInvalidRight = errors.New("aci: invalid right")

// Right represents a directory access right.
// Rights are bit flags that can be combined using bitwise OR.
type Right int

const (
	// Read allows reading attribute values
	Read Right = 1 << iota

	// Compare allows comparing attribute values
	Compare

	// Search allows finding entries
	Search

	// SelfWrite allows adding or removing one's own DN in a group
	SelfWrite

	// Write allows modifying attribute values
	Write

	// Delete allows removing entries
	Delete

	// Add allows creating child entries
	Add

	// Proxy allows acting as another entry
	Proxy

	// All combines every right except Proxy
	All = Read | Compare | Search | SelfWrite | Write | Delete | Add
)

// rightTable lists the rights in the order the editor presents them.
var rightTable = []struct {
	right   Right
	keyword string
}{
	{Read, "read"},
	{Compare, "compare"},
	{Search, "search"},
	{SelfWrite, "selfwrite"},
	{Write, "write"},
	{Delete, "delete"},
	{Add, "add"},
	{Proxy, "proxy"},
}

// String returns the keyword of a single right, "all" for All, and a
// comma-separated list for other combinations.
func (r Right) String() string {
	if r == All {
		return "all"
	}
	for _, e := range rightTable {
		if r == e.right {
			return e.keyword
		}
	}
	if kw := r.Keywords(); len(kw) > 0 {
		return strings.Join(kw, ",")
	}
	return "unknown"
}

// Has checks if the right includes the specified right.
func (r Right) Has(other Right) bool {
	return r&other != 0
}

// Keywords returns the keywords of every right set in r, in table order.
func (r Right) Keywords() []string {
	var out []string
	for _, e := range rightTable {
		if r.Has(e.right) {
			out = append(out, e.keyword)
		}
	}
	return out
}

// ParseRight converts a right keyword to its flag.
func ParseRight(s string) (Right, error) {
	kw := strings.ToLower(strings.TrimSpace(s))
	if kw == "all" {
		return All, nil
	}
	for _, e := range rightTable {
		if kw == e.keyword {
			return e.right, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidRight, s)
}

// ParseRights converts a comma-separated rights list such as "read, write"
// or "(read,search)" to combined flags.
func ParseRights(s string) (Right, error) {
	var result Right
	for _, kw := range splitRights(s) {
		r, err := ParseRight(kw)
		if err != nil {
			return 0, err
		}
		result |= r
	}
	return result, nil
}

// DefaultRights returns the editor's rights table with nothing selected.
func DefaultRights() []RightRow {
	rows := make([]RightRow, 0, len(rightTable))
	for _, e := range rightTable {
		rows = append(rows, RightRow{Right: e.keyword})
	}
	return rows
}

// splitRights splits the value of an allow/deny clause into keywords.
func splitRights(v string) []string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "(")
	v = strings.TrimSuffix(v, ")")

	var out []string
	for _, kw := range strings.Split(v, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
