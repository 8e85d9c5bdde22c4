// Package aci scans and assembles directory server Access Control
// Instructions (ACIs).
//
// # Overview
//
// An ACI is stored as a single attribute value on a directory entry:
//
//	(target="ldap:///ou=people,dc=example,dc=com")(targetattr="cn || mail")
//	(version 3.0; acl "people read"; allow(read,search) userdn="ldap:///anyone";)
//
// The package provides:
//
//   - A tokenizing scanner that decomposes ACI text into attribute records
//   - Helpers built on the scanner (ACI name, permission, summaries)
//   - An assembler that renders a structured Draft as canonical ACI text
//   - A decoder that maps scanned records back onto a Draft
//   - YAML draft files, draft validation and a draft file watcher
//
// # Scanning
//
// Scan never panics. When the text cannot be fully interpreted it returns
// the records parsed so far together with a *ScanError carrying the byte
// position of the failure:
//
//	attrs, err := aci.Scan(text)
//	var scanErr *aci.ScanError
//	if errors.As(err, &scanErr) {
//	    fmt.Println(aci.Diagnose(text, err))
//	}
//	for _, a := range attrs {
//	    fmt.Println(a.Name, a.Operator, a.Value)
//	}
//
// Boolean joins between bind rules are reported as connective records with
// an empty Name and Operator "and" or "or".
//
// # Helpers
//
//	name, err := aci.ActualName(text) // value of the acl "..." clause
//	allowed := aci.IsPermissionAllow(text)
//
// IsPermissionAllow reports whether any allow clause is present. A deny
// clause in the same ACI does not change the answer.
//
// # Assembling
//
//	d := &aci.Draft{
//	    Name:      "test1",
//	    Target:    "dc=example,dc=com",
//	    RightType: aci.PermissionAllow,
//	    Rights:    []aci.RightRow{{Right: "read", Selected: true}},
//	    BindRules: []aci.BindRule{{Type: aci.BindUserDN, Operator: "=", Value: "ldap:///anyone"}},
//	}
//	text, err := aci.Assemble(d)
//	// (target="ldap:///dc=example,dc=com")(targetattr="*")(version 3.0; acl "test1"; allow(read) userdn="ldap:///anyone";)
//
// Bind rules are grouped by category in a fixed order: userdn, groupdn,
// roledn, authmethod, ssf, ip, dns, userattr. Rules of one category are
// joined with "or" inside one parenthesized group, categories with "and".
//
// Assemble refuses a draft without a target (ErrEmptyTarget) so callers can
// block submission instead of writing a meaningless value.
package aci
