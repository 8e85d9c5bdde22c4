package aci

// Connective operators recorded between bind rules.
const (
	ConnectiveAnd = "and"
	ConnectiveOr  = "or"
)

// Well-known clause names.
const (
	NameTarget       = "target"
	NameTargetAttr   = "targetattr"
	NameTargetFilter = "targetfilter"
	NameTargetFrom   = "target_from"
	NameTargetTo     = "target_to"
	NameVersion      = "version"
	NameACL          = "acl"
	NameAllow        = "allow"
	NameDeny         = "deny"
	NameDayOfWeek    = "dayofweek"
	NameTimeOfDay    = "timeofday"
)

// Attribute is one clause scanned from an ACI.
type Attribute struct {
	// Name is the clause keyword. Empty for connectives.
	Name string `json:"name" yaml:"name"`

	// Operator is the comparison operator ("=", "!=", "<", ">", "<=", ">="),
	// the connective word ("and", "or"), or empty for clauses without an
	// operator such as `acl "name"` or `allow(read)`.
	Operator string `json:"operator" yaml:"operator"`

	// Value is the right-hand side with one layer of surrounding quotes removed.
	Value string `json:"value" yaml:"value"`

	// Start and End are byte offsets of the clause in the scanned text.
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// IsConnective reports whether the record marks an "and"/"or" join.
func (a Attribute) IsConnective() bool {
	return a.Name == "" && (a.Operator == ConnectiveAnd || a.Operator == ConnectiveOr)
}
