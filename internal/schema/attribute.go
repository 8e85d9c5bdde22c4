package schema

// AttributeUsage defines how an attribute is used in the directory.
type AttributeUsage int

const (
	// UserApplications indicates a user attribute that applications can read and write.
	// This is the default usage for most attributes.
	UserApplications AttributeUsage = iota

	// DirectoryOperation indicates an operational attribute used by the directory
	// for its own purposes.
	DirectoryOperation

	// DistributedOperation indicates an operational attribute shared across
	// directory servers.
	DistributedOperation

	// DSAOperation indicates an operational attribute local to one server.
	DSAOperation
)

// String returns the string representation of the AttributeUsage.
func (u AttributeUsage) String() string {
	switch u {
	case UserApplications:
		return "userApplications"
	case DirectoryOperation:
		return "directoryOperation"
	case DistributedOperation:
		return "distributedOperation"
	case DSAOperation:
		return "dSAOperation"
	default:
		return "unknown"
	}
}

// IsOperational returns true if this usage indicates an operational attribute.
func (u AttributeUsage) IsOperational() bool {
	return u != UserApplications
}

// AttributeType represents an LDAP attribute type definition.
type AttributeType struct {
	OID         string         `json:"oid" yaml:"oid"`
	Name        string         `json:"name" yaml:"name"`
	Names       []string       `json:"names,omitempty" yaml:"names,omitempty"` // All names including aliases
	Desc        string         `json:"desc,omitempty" yaml:"desc,omitempty"`
	Obsolete    bool           `json:"obsolete,omitempty" yaml:"obsolete,omitempty"`
	Superior    string         `json:"sup,omitempty" yaml:"sup,omitempty"`
	Equality    string         `json:"equality,omitempty" yaml:"equality,omitempty"`
	Syntax      string         `json:"syntax,omitempty" yaml:"syntax,omitempty"`
	SingleValue bool           `json:"singleValue,omitempty" yaml:"singleValue,omitempty"`
	NoUserMod   bool           `json:"noUserModification,omitempty" yaml:"noUserModification,omitempty"`
	Origin      string         `json:"origin,omitempty" yaml:"origin,omitempty"`
	Usage       AttributeUsage `json:"-" yaml:"-"`
}

// NewAttributeType creates a new AttributeType with the given OID and name.
// The default usage is UserApplications.
func NewAttributeType(oid, name string) *AttributeType {
	return &AttributeType{
		OID:   oid,
		Name:  name,
		Names: []string{name},
		Usage: UserApplications,
	}
}

// IsUserAttribute returns true if ACIs on user entries would name it in
// targetattr: a user-modifiable, non-operational, non-obsolete attribute.
func (at *AttributeType) IsUserAttribute() bool {
	return at.Usage == UserApplications && !at.NoUserMod && !at.Obsolete
}

// IsOperational returns true if this is an operational attribute.
func (at *AttributeType) IsOperational() bool {
	return at.Usage.IsOperational()
}

// AddName adds an alias name to this attribute type.
func (at *AttributeType) AddName(name string) {
	for _, n := range at.Names {
		if n == name {
			return
		}
	}
	at.Names = append(at.Names, name)
}
