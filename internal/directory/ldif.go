package directory

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/go-ldap/ldap/v3"
)

// WriteLDIF renders req as an LDIF change record (RFC 2849).
func WriteLDIF(w io.Writer, req *ldap.ModifyRequest) error {
	if req == nil || len(req.Changes) == 0 {
		return ErrNoChanges
	}

	bw := bufio.NewWriter(w)

	writeLine(bw, "dn", req.DN)
	fmt.Fprintln(bw, "changetype: modify")

	for _, change := range req.Changes {
		op, err := changeOp(change.Operation)
		if err != nil {
			return err
		}
		attr := change.Modification.Type
		fmt.Fprintf(bw, "%s: %s\n", op, attr)
		for _, v := range change.Modification.Vals {
			writeLine(bw, attr, v)
		}
		fmt.Fprintln(bw, "-")
	}

	return bw.Flush()
}

func changeOp(op uint) (string, error) {
	switch op {
	case ldap.AddAttribute:
		return "add", nil
	case ldap.DeleteAttribute:
		return "delete", nil
	case ldap.ReplaceAttribute:
		return "replace", nil
	}
	return "", fmt.Errorf("directory: unknown change operation %d", op)
}

// writeLine writes "name: value", or "name:: base64" when the value is not
// a safe LDIF string.
func writeLine(w io.Writer, name, value string) {
	if safeString(value) {
		fmt.Fprintf(w, "%s: %s\n", name, value)
		return
	}
	fmt.Fprintf(w, "%s:: %s\n", name, base64.StdEncoding.EncodeToString([]byte(value)))
}

// safeString reports whether value can be written verbatim: ASCII without
// NUL, CR or LF, not starting with space, colon or '<' and not ending with
// a space.
func safeString(value string) bool {
	if value == "" {
		return true
	}
	switch value[0] {
	case ' ', ':', '<':
		return false
	}
	if value[len(value)-1] == ' ' {
		return false
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == 0 || c == '\n' || c == '\r' || c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
