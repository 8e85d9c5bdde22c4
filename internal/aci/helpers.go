package aci

import (
	"errors"
	"fmt"
	"strings"
)

// ActualName returns the display name of an ACI, the value of its
// `acl "..."` clause. A name found before a scan failure is still returned.
// When no name was scanned the error wraps ErrNoName and, if scanning
// failed, the scan error as well.
func ActualName(text string) (string, error) {
	attrs, err := Scan(text)
	for _, a := range attrs {
		if a.Name == NameACL {
			return a.Value, nil
		}
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoName, err)
	}
	return "", ErrNoName
}

// IsPermissionAllow reports whether the ACI contains an allow clause.
// The presence of a deny clause does not affect the result.
func IsPermissionAllow(text string) bool {
	attrs, _ := Scan(text)
	for _, a := range attrs {
		if a.Name == NameAllow {
			return true
		}
	}
	return false
}

// Summary is a condensed view of an ACI for list displays.
type Summary struct {
	Name       string   `json:"name" yaml:"name"`
	Permission string   `json:"permission" yaml:"permission"`
	Rights     []string `json:"rights" yaml:"rights"`
	Target     string   `json:"target,omitempty" yaml:"target,omitempty"`
	TargetAttr string   `json:"targetattr,omitempty" yaml:"targetattr,omitempty"`
	BindRules  []string `json:"bindRules,omitempty" yaml:"bindRules,omitempty"`
	Complete   bool     `json:"complete" yaml:"complete"`
}

// Describe scans text and summarizes it. The summary is filled from
// whatever was scanned; Complete is false and the scan error is returned
// when the text could not be fully interpreted.
func Describe(text string) (*Summary, error) {
	attrs, err := Scan(text)

	sum := &Summary{Complete: err == nil}
	var allow, deny bool

	for _, a := range attrs {
		switch {
		case a.IsConnective():
			continue
		case a.Name == NameACL && sum.Name == "":
			sum.Name = a.Value
		case a.Name == NameAllow || a.Name == NameDeny:
			allow = allow || a.Name == NameAllow
			deny = deny || a.Name == NameDeny
			sum.Rights = append(sum.Rights, splitRights(a.Value)...)
		case a.Name == NameTarget:
			sum.Target = strings.TrimPrefix(a.Value, ldapURLPrefix)
		case a.Name == NameTargetAttr:
			sum.TargetAttr = a.Operator + a.Value
		case IsBindKeyword(a.Name):
			sum.BindRules = append(sum.BindRules, a.Name+a.Operator+`"`+a.Value+`"`)
		}
	}

	switch {
	case allow:
		sum.Permission = NameAllow
	case deny:
		sum.Permission = NameDeny
	}

	return sum, err
}

// Diagnose renders a scan failure the way the console reports it: the
// offending line followed by a caret under the failing column. Errors that
// are not scan errors are returned as their message.
func Diagnose(text string, err error) string {
	if err == nil {
		return ""
	}
	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		return err.Error()
	}

	pos := scanErr.Position
	if pos > len(text) {
		pos = len(text)
	}
	if pos < 0 {
		pos = 0
	}

	lineStart := strings.LastIndexByte(text[:pos], '\n') + 1
	lineEnd := len(text)
	if idx := strings.IndexByte(text[pos:], '\n'); idx >= 0 {
		lineEnd = pos + idx
	}

	var b strings.Builder
	b.WriteString(text[lineStart:lineEnd])
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", pos-lineStart))
	b.WriteString("^ ")
	b.WriteString(scanErr.Error())
	return b.String()
}
