// Package filter parses the LDAP search filters carried by ACI targetfilter
// clauses.
//
// # Overview
//
// Filters use the RFC 4515 string form:
//
//   - AND (&): Logical conjunction of filters
//   - OR (|): Logical disjunction of filters
//   - NOT (!): Logical negation of a filter
//   - Equality (=): Exact attribute value match
//   - Substring (*): Pattern matching with wildcards
//   - Greater-or-Equal (>=) and Less-or-Equal (<=): Comparison filters
//   - Present (=*): Attribute existence check
//   - Approximate (~=): Fuzzy matching
//
// Values may contain \XX hex escapes; Parse decodes them and String encodes
// them again.
//
// # Checking a targetfilter
//
//	f, err := filter.Parse("(&(objectClass=person)(!(uid=admin)))")
//	if err != nil {
//	    // reject the draft
//	}
//	for _, attr := range f.Attributes() {
//	    // attr is objectClass, then uid
//	}
package filter
