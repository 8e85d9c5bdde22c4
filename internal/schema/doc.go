// Package schema provides the LDAP attribute type catalog used when
// authoring ACIs.
//
// # Overview
//
// Attribute types are parsed from RFC 4512 definitions:
//
//	( 2.5.4.3 NAME ( 'cn' 'commonName' ) DESC 'Common name' SUP name )
//
// A Catalog indexes them by OID, primary name and aliases. Lookups are
// case-insensitive, as attribute descriptions are in LDAP.
//
// # Usage
//
//	cat := schema.Default()
//	cat.Has("commonName") // true
//	cat.Has("*")          // true, the wildcard of targetattr
//
//	at := cat.Lookup("2.5.4.3")
//	fmt.Println(at.Name) // cn
//
// # Loading Definitions
//
// LoadFile reads one definition per line. Lines may carry the attribute
// name they have in a subschema entry and may be folded as in LDIF:
//
//	# local extensions
//	attributeTypes: ( 1.3.6.1.4.1.99999.1 NAME 'badgeNumber'
//	  SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 SINGLE-VALUE )
//
// Other lines of a subschema export (dn, objectClasses) are ignored.
package schema
