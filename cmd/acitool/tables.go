package main

import (
	"strconv"
	"strings"

	"github.com/oba-ldap/aci/internal/aci"
	"github.com/oba-ldap/aci/internal/directory"
	"github.com/oba-ldap/aci/internal/schema"
)

// recordList renders scanned records as a table.
type recordList []aci.Attribute

func (l recordList) Headers() []string {
	return []string{"NAME", "OPERATOR", "VALUE", "START", "END"}
}

func (l recordList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, a := range l {
		rows = append(rows, []string{
			a.Name,
			a.Operator,
			a.Value,
			strconv.Itoa(a.Start),
			strconv.Itoa(a.End),
		})
	}
	return rows
}

// entryList renders ACIs retrieved from a directory.
type entryList []directory.EntryACI

func (l entryList) Headers() []string {
	return []string{"DN", "NAME", "PERMISSION"}
}

func (l entryList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, e := range l {
		permission := aci.NameDeny
		if aci.IsPermissionAllow(e.ACI) {
			permission = aci.NameAllow
		}
		rows = append(rows, []string{e.DN, e.Name, permission})
	}
	return rows
}

// attributeView is the printable form of a schema attribute type.
type attributeView struct {
	Name        string   `json:"name" yaml:"name"`
	OID         string   `json:"oid" yaml:"oid"`
	Aliases     []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Syntax      string   `json:"syntax,omitempty" yaml:"syntax,omitempty"`
	SingleValue bool     `json:"singleValue,omitempty" yaml:"singleValue,omitempty"`
	Usage       string   `json:"usage" yaml:"usage"`
}

type attributeList []attributeView

func newAttributeList(types []*schema.AttributeType) attributeList {
	list := make(attributeList, 0, len(types))
	for _, at := range types {
		view := attributeView{
			Name:        at.Name,
			OID:         at.OID,
			Syntax:      at.Syntax,
			SingleValue: at.SingleValue,
			Usage:       at.Usage.String(),
		}
		for _, n := range at.Names {
			if !strings.EqualFold(n, at.Name) {
				view.Aliases = append(view.Aliases, n)
			}
		}
		list = append(list, view)
	}
	return list
}

func (l attributeList) Headers() []string {
	return []string{"NAME", "OID", "SYNTAX", "USAGE"}
}

func (l attributeList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, v := range l {
		name := v.Name
		if len(v.Aliases) > 0 {
			name += " (" + strings.Join(v.Aliases, ", ") + ")"
		}
		rows = append(rows, []string{name, v.OID, v.Syntax, v.Usage})
	}
	return rows
}

// summaryPairs lays a summary out as key/value lines.
func summaryPairs(s *aci.Summary) [][2]string {
	return [][2]string{
		{"Name", s.Name},
		{"Permission", s.Permission},
		{"Rights", strings.Join(s.Rights, ", ")},
		{"Target", s.Target},
		{"Target attributes", s.TargetAttr},
		{"Bind rules", strings.Join(s.BindRules, " | ")},
		{"Complete", strconv.FormatBool(s.Complete)},
	}
}
