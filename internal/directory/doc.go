// Package directory reads and writes the aci attribute of directory entries
// over LDAP.
//
// Changes to an ACI are expressed as LDAP modify requests: replacing an ACI
// deletes the exact old value and adds the new one in a single request, so
// other ACIs on the entry are left untouched.
//
//	req, err := directory.ReplaceRequest(dn, oldACI, newACI)
//	if err != nil {
//		return err
//	}
//	err = accessor.Apply(ctx, req)
//
// The same request can be rendered as an LDIF change record with WriteLDIF
// for review or for ldapmodify.
package directory
