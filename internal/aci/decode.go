package aci

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidUserAttr is returned for a userattr value without a bind type.
var ErrInvalidUserAttr = errors.New("aci: invalid userattr value")

// Decode maps scanned records onto a draft, the inverse of Assemble.
// Records with unknown names and connectives are skipped.
func Decode(attrs []Attribute) *Draft {
	d := NewDraft()

	for _, a := range attrs {
		switch name := strings.ToLower(a.Name); {
		case a.IsConnective():
			continue
		case name == NameTarget:
			d.Target = strings.TrimPrefix(a.Value, ldapURLPrefix)
		case name == NameTargetAttr:
			d.TargetAttrOperator = operatorOr(a.Operator, OpEqual)
			if a.Value != "*" || d.TargetAttrOperator != OpEqual {
				d.TargetAttrs = splitTargetAttrs(a.Value)
			}
		case name == NameTargetFilter:
			d.TargetFilter = a.Value
		case name == NameTargetFrom:
			d.TargetFrom = a.Value
		case name == NameTargetTo:
			d.TargetTo = a.Value
		case name == NameACL:
			d.Name = a.Value
		case name == NameAllow || name == NameDeny:
			d.RightType = Permission(name)
			d.SelectRights(splitRights(a.Value)...)
		case name == NameDayOfWeek:
			for _, code := range strings.Split(a.Value, ",") {
				d.Days.Set(code)
			}
		case name == NameTimeOfDay:
			switch a.Operator {
			case OpGreater, OpGreaterOrEqual:
				d.TimeOfDay.Start = a.Value
				d.TimeOfDay.StartOperator = a.Operator
			case OpLess, OpLessOrEqual:
				d.TimeOfDay.End = a.Value
				d.TimeOfDay.EndOperator = a.Operator
			}
		case IsBindType(name):
			rule := BindRule{
				Type:     BindType(name),
				Operator: operatorOr(a.Operator, OpEqual),
				Value:    a.Value,
			}
			if rule.Type == BindUserAttr {
				if ua, err := ParseUserAttr(a.Value); err == nil {
					rule.UserAttr = ua
				}
			}
			d.BindRules = append(d.BindRules, rule)
		}
	}

	return d
}

// DecodeString scans text and decodes the records. On a scan failure the
// partially filled draft is returned with the scan error.
func DecodeString(text string) (*Draft, error) {
	attrs, err := Scan(text)
	return Decode(attrs), err
}

// ParseUserAttr parses a userattr value such as "parent[0,1].manager#USERDN".
func ParseUserAttr(v string) (*UserAttr, error) {
	ua := &UserAttr{}

	if strings.HasPrefix(v, "parent[") {
		end := strings.Index(v, "].")
		if end < 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidUserAttr, v)
		}
		for _, field := range strings.Split(v[len("parent["):end], ",") {
			level, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil || level < 0 || level > 4 {
				return nil, fmt.Errorf("%w: bad level %q", ErrInvalidUserAttr, field)
			}
			if level > 0 {
				ua.Levels = append(ua.Levels, level)
			}
		}
		v = v[end+2:]
	}

	idx := strings.LastIndexByte(v, '#')
	if idx <= 0 || idx == len(v)-1 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidUserAttr, v)
	}
	ua.Attribute = v[:idx]
	ua.BindType = v[idx+1:]
	return ua, nil
}

func splitTargetAttrs(v string) []string {
	var out []string
	for _, attr := range strings.Split(v, "||") {
		if attr = strings.TrimSpace(attr); attr != "" {
			out = append(out, attr)
		}
	}
	return out
}

func operatorOr(op, fallback string) string {
	if op == "" {
		return fallback
	}
	return op
}
