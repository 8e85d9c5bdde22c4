package aci

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

const ldapURLPrefix = "ldap:///"

// Assemble renders d as ACI text.
//
// Clauses are written in a fixed order: target, targetattr, targetfilter,
// target_from/target_to, the version preamble, the permission with its
// selected rights, then bind rules, days and time of day. A draft without a
// target yields an *AssemblyError wrapping ErrEmptyTarget.
func Assemble(d *Draft) (string, error) {
	if d == nil {
		return "", &AssemblyError{Reason: ErrNilDraft}
	}
	target := strings.TrimPrefix(strings.TrimSpace(d.Target), ldapURLPrefix)
	if target == "" {
		return "", &AssemblyError{Field: NameTarget, Reason: ErrEmptyTarget}
	}

	var b strings.Builder

	b.WriteString(`(target="` + ldapURLPrefix + target + `")`)

	if attrs := uniqueAttrs(d.TargetAttrs); len(attrs) > 0 {
		op := d.TargetAttrOperator
		if op == "" {
			op = OpEqual
		}
		b.WriteString(`(targetattr` + op + `"` + strings.Join(attrs, " || ") + `")`)
	} else {
		b.WriteString(`(targetattr="*")`)
	}

	if d.TargetFilter != "" {
		b.WriteString(`(targetfilter="` + d.TargetFilter + `")`)
	}

	// A half-specified move pair is dropped.
	if d.TargetFrom != "" && d.TargetTo != "" {
		b.WriteString(`(target_from="` + d.TargetFrom + `")`)
		b.WriteString(`(target_to="` + d.TargetTo + `")`)
	}

	b.WriteString(`(version 3.0; acl "` + d.Name + `"; `)

	permission := d.RightType
	if permission == "" {
		permission = PermissionAllow
	}
	b.WriteString(string(permission) + "(" + strings.Join(d.SelectedRights(), ",") + ")")

	if rules := bindRuleClause(d); rules != "" {
		b.WriteByte(' ')
		b.WriteString(rules)
	}

	b.WriteString(";)")
	return b.String(), nil
}

// bindRuleClause joins the bind rule groups, days and time of day.
func bindRuleClause(d *Draft) string {
	var parts []string

	for _, category := range bindCategories {
		rules := d.RulesOf(category)
		switch len(rules) {
		case 0:
			continue
		case 1:
			parts = append(parts, rules[0].term())
		default:
			terms := make([]string, len(rules))
			for i, r := range rules {
				terms[i] = r.term()
			}
			parts = append(parts, "("+strings.Join(terms, " "+ConnectiveOr+" ")+")")
		}
	}

	if codes := d.Days.Codes(); len(codes) > 0 {
		parts = append(parts, NameDayOfWeek+`="`+strings.Join(codes, ",")+`"`)
	}

	if d.TimeOfDay.IsSet() {
		parts = append(parts, d.TimeOfDay.clause())
	}

	return strings.Join(parts, " "+ConnectiveAnd+" ")
}

// term renders one bind rule as keyword, operator and quoted value.
func (r BindRule) term() string {
	op := r.Operator
	if op == "" {
		op = OpEqual
	}
	value := unquote(r.Value)
	if r.Type == BindUserAttr && r.UserAttr != nil {
		value = r.UserAttr.String()
	}
	return string(r.Type) + op + `"` + value + `"`
}

func (t TimeOfDay) clause() string {
	startOp := t.StartOperator
	if startOp == "" {
		startOp = OpGreaterOrEqual
	}
	endOp := t.EndOperator
	if endOp == "" {
		endOp = OpLessOrEqual
	}
	return NameTimeOfDay + startOp + `"` + normalizeTime(t.Start) + `" ` + ConnectiveAnd + " " +
		NameTimeOfDay + endOp + `"` + normalizeTime(t.End) + `"`
}

// uniqueAttrs trims attribute names and drops blanks and case-insensitive
// duplicates, keeping the first occurrence.
func uniqueAttrs(attrs []string) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		a = strings.TrimSpace(a)
		if a == "" || !seen.Add(strings.ToLower(a)) {
			continue
		}
		out = append(out, a)
	}
	return out
}
