package aci

import (
	"slices"
	"strconv"
	"strings"
)

// Permission is the effect of an ACI.
type Permission string

const (
	PermissionAllow Permission = "allow"
	PermissionDeny  Permission = "deny"
)

// BindType is the keyword of a bind rule.
type BindType string

const (
	BindUserDN     BindType = "userdn"
	BindGroupDN    BindType = "groupdn"
	BindRoleDN     BindType = "roledn"
	BindAuthMethod BindType = "authmethod"
	BindSSF        BindType = "ssf"
	BindIP         BindType = "ip"
	BindDNS        BindType = "dns"
	BindUserAttr   BindType = "userattr"
)

// bindCategories is the order in which bind rule groups are assembled.
var bindCategories = []BindType{
	BindUserDN,
	BindGroupDN,
	BindRoleDN,
	BindAuthMethod,
	BindSSF,
	BindIP,
	BindDNS,
	BindUserAttr,
}

// BindCategories returns the bind rule types in assembly order.
func BindCategories() []BindType {
	return slices.Clone(bindCategories)
}

// IsBindType reports whether s names a bind rule category.
func IsBindType(s string) bool {
	return slices.Contains(bindCategories, BindType(s))
}

// IsBindKeyword reports whether s is a keyword allowed in the bind rule
// part of an ACI, including dayofweek and timeofday.
func IsBindKeyword(s string) bool {
	return IsBindType(s) || s == NameDayOfWeek || s == NameTimeOfDay
}

// Userattr bind types.
const (
	UserAttrUserDN  = "USERDN"
	UserAttrGroupDN = "GROUPDN"
	UserAttrRoleDN  = "ROLEDN"
	UserAttrSelfDN  = "SELFDN"
	UserAttrLDAPURL = "LDAPURL"
)

// Comparison operators.
const (
	OpEqual          = "="
	OpNotEqual       = "!="
	OpLess           = "<"
	OpGreater        = ">"
	OpLessOrEqual    = "<="
	OpGreaterOrEqual = ">="
)

// IsOperator reports whether s is a comparison operator of the ACI grammar.
func IsOperator(s string) bool {
	switch s {
	case OpEqual, OpNotEqual, OpLess, OpGreater, OpLessOrEqual, OpGreaterOrEqual:
		return true
	}
	return false
}

// TimeUnset is the time-of-day value the editor starts with.
const TimeUnset = "0000"

// Draft is the structured form of an ACI, as held by the authoring editor.
type Draft struct {
	// Name is the display name placed in `acl "..."`.
	Name string `json:"name" yaml:"name" validate:"required"`

	// Target is the DN the ACI applies to, without the ldap:/// prefix.
	Target string `json:"target" yaml:"target" validate:"required,ldapdn"`

	// TargetAttrs is the ordered set of target attributes. Empty means all.
	TargetAttrs []string `json:"targetAttrs,omitempty" yaml:"targetAttrs,omitempty" validate:"dive,required"`

	// TargetAttrOperator is "=" (default) or "!=".
	TargetAttrOperator string `json:"targetAttrOperator,omitempty" yaml:"targetAttrOperator,omitempty" validate:"omitempty,attrop"`

	TargetFilter string `json:"targetFilter,omitempty" yaml:"targetFilter,omitempty"`
	TargetFrom   string `json:"targetFrom,omitempty" yaml:"targetFrom,omitempty" validate:"omitempty,ldapdn"`
	TargetTo     string `json:"targetTo,omitempty" yaml:"targetTo,omitempty" validate:"omitempty,ldapdn"`

	// RightType is allow (default) or deny.
	RightType Permission `json:"rightType,omitempty" yaml:"rightType,omitempty" validate:"omitempty,oneof=allow deny"`

	// Rights is the rights table. Selected rows are emitted in table order.
	Rights []RightRow `json:"rights" yaml:"rights" validate:"dive"`

	// BindRules are grouped by category when assembled.
	BindRules []BindRule `json:"bindRules,omitempty" yaml:"bindRules,omitempty" validate:"dive"`

	Days      Days      `json:"days" yaml:"days,omitempty"`
	TimeOfDay TimeOfDay `json:"timeOfDay" yaml:"timeOfDay,omitempty"`
}

// RightRow is one row of the rights table.
type RightRow struct {
	Right    string `json:"right" yaml:"right" validate:"required,aciright"`
	Selected bool   `json:"selected" yaml:"selected"`
}

// BindRule is one subject condition of an ACI.
type BindRule struct {
	Type     BindType `json:"type" yaml:"type" validate:"required,bindtype"`
	Operator string   `json:"operator,omitempty" yaml:"operator,omitempty" validate:"omitempty,aciop"`
	Value    string   `json:"value,omitempty" yaml:"value,omitempty" validate:"required_without=UserAttr"`

	// UserAttr, when set on a userattr rule, is used instead of Value.
	UserAttr *UserAttr `json:"userAttr,omitempty" yaml:"userAttr,omitempty"`
}

// UserAttr is the structured value of a userattr bind rule.
type UserAttr struct {
	Attribute string `json:"attribute" yaml:"attribute" validate:"required"`
	BindType  string `json:"bindType" yaml:"bindType" validate:"required"`

	// Levels lists the child levels (1 to 4) the rule is inherited to.
	// Level 0, the entry itself, is always implied.
	Levels []int `json:"levels,omitempty" yaml:"levels,omitempty" validate:"dive,min=1,max=4"`
}

// TimeOfDay bounds the hours an ACI is effective, as HHMM values.
type TimeOfDay struct {
	Start         string `json:"start,omitempty" yaml:"start,omitempty" validate:"omitempty,hhmm"`
	StartOperator string `json:"startOperator,omitempty" yaml:"startOperator,omitempty" validate:"omitempty,aciop"`
	End           string `json:"end,omitempty" yaml:"end,omitempty" validate:"omitempty,hhmm"`
	EndOperator   string `json:"endOperator,omitempty" yaml:"endOperator,omitempty" validate:"omitempty,aciop"`
}

// Days are the day-of-week checkboxes.
type Days struct {
	Sun bool `json:"sun,omitempty" yaml:"sun,omitempty"`
	Mon bool `json:"mon,omitempty" yaml:"mon,omitempty"`
	Tue bool `json:"tue,omitempty" yaml:"tue,omitempty"`
	Wed bool `json:"wed,omitempty" yaml:"wed,omitempty"`
	Thu bool `json:"thu,omitempty" yaml:"thu,omitempty"`
	Fri bool `json:"fri,omitempty" yaml:"fri,omitempty"`
	Sat bool `json:"sat,omitempty" yaml:"sat,omitempty"`
}

// NewDraft returns a draft with the editor's initial state.
func NewDraft() *Draft {
	return &Draft{
		TargetAttrOperator: OpEqual,
		RightType:          PermissionAllow,
		Rights:             DefaultRights(),
		TimeOfDay: TimeOfDay{
			Start:         TimeUnset,
			StartOperator: OpGreaterOrEqual,
			End:           TimeUnset,
			EndOperator:   OpLessOrEqual,
		},
	}
}

// SelectedRights returns the keywords of the selected rights in table order.
func (d *Draft) SelectedRights() []string {
	var out []string
	for _, row := range d.Rights {
		if row.Selected {
			out = append(out, row.Right)
		}
	}
	return out
}

// SelectRights marks the given keywords as selected. Keywords missing from
// the table are appended as selected rows.
func (d *Draft) SelectRights(keywords ...string) {
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		idx := slices.IndexFunc(d.Rights, func(row RightRow) bool {
			return strings.EqualFold(row.Right, kw)
		})
		if idx < 0 {
			d.Rights = append(d.Rights, RightRow{Right: kw, Selected: true})
			continue
		}
		d.Rights[idx].Selected = true
	}
}

// RulesOf returns the bind rules of one category in draft order.
func (d *Draft) RulesOf(t BindType) []BindRule {
	var out []BindRule
	for _, r := range d.BindRules {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

// Codes returns the day codes of the checked days, Sunday first.
func (days Days) Codes() []string {
	flags := []struct {
		set  bool
		code string
	}{
		{days.Sun, "sun"},
		{days.Mon, "mon"},
		{days.Tue, "tue"},
		{days.Wed, "wed"},
		{days.Thu, "thu"},
		{days.Fri, "fri"},
		{days.Sat, "sat"},
	}

	var out []string
	for _, f := range flags {
		if f.set {
			out = append(out, f.code)
		}
	}
	return out
}

// Set checks the day named by a day code. Unknown codes are ignored.
func (days *Days) Set(code string) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "sun":
		days.Sun = true
	case "mon":
		days.Mon = true
	case "tue":
		days.Tue = true
	case "wed":
		days.Wed = true
	case "thu":
		days.Thu = true
	case "fri":
		days.Fri = true
	case "sat":
		days.Sat = true
	}
}

// IsSet reports whether either bound differs from TimeUnset.
func (t TimeOfDay) IsSet() bool {
	return normalizeTime(t.Start) != TimeUnset || normalizeTime(t.End) != TimeUnset
}

func normalizeTime(v string) string {
	if v == "" {
		return TimeUnset
	}
	return v
}

// String renders the userattr value: an optional parent[0,...]. prefix
// followed by attribute#BINDTYPE.
func (u *UserAttr) String() string {
	var b strings.Builder
	if levels := u.childLevels(); len(levels) > 0 {
		b.WriteString("parent[0")
		for _, l := range levels {
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(l))
		}
		b.WriteString("].")
	}
	b.WriteString(u.Attribute)
	b.WriteByte('#')
	b.WriteString(u.BindType)
	return b.String()
}

// childLevels returns the distinct levels between 1 and 4, sorted.
func (u *UserAttr) childLevels() []int {
	var out []int
	for _, l := range u.Levels {
		if l >= 1 && l <= 4 && !slices.Contains(out, l) {
			out = append(out, l)
		}
	}
	slices.Sort(out)
	return out
}
