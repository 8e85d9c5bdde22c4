package filter

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Parser errors
var (
	ErrEmptyFilter      = errors.New("filter: empty filter")
	ErrInvalidFilter    = errors.New("filter: invalid filter syntax")
	ErrUnbalancedParens = errors.New("filter: unbalanced parentheses")
	ErrMissingAttribute = errors.New("filter: missing attribute name")
	ErrInvalidEscape    = errors.New("filter: invalid escape sequence")
	ErrExtensibleMatch  = errors.New("filter: extensible match is not supported")
)

// Parse parses an LDAP filter string into a Filter structure.
// Supports RFC 4515 filter syntax:
//   - (attr=value)     - equality
//   - (attr=*)         - presence
//   - (attr=*val*)     - substring
//   - (attr>=value)    - greater or equal
//   - (attr<=value)    - less or equal
//   - (attr~=value)    - approximate match
//   - (&(f1)(f2)...)   - AND
//   - (|(f1)(f2)...)   - OR
//   - (!(filter))      - NOT
//
// A single item may be given without parentheses, as in "objectClass=person".
func Parse(filterStr string) (*Filter, error) {
	filterStr = strings.TrimSpace(filterStr)
	if filterStr == "" {
		return nil, ErrEmptyFilter
	}

	if !strings.HasPrefix(filterStr, "(") {
		if strings.ContainsAny(filterStr, "()") {
			return nil, ErrInvalidFilter
		}
		filterStr = "(" + filterStr + ")"
	}

	end, err := matchingParen(filterStr)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(filterStr[end+1:]) != "" {
		return nil, fmt.Errorf("%w: trailing text after position %d", ErrInvalidFilter, end)
	}

	return parseFilter(filterStr[:end+1])
}

// parseFilter parses one parenthesized filter.
func parseFilter(s string) (*Filter, error) {
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return nil, ErrEmptyFilter
	}

	switch inner[0] {
	case '&':
		return parseComposite(FilterAnd, inner[1:])
	case '|':
		return parseComposite(FilterOr, inner[1:])
	case '!':
		return parseNotFilter(inner[1:])
	default:
		return parseSimpleFilter(inner)
	}
}

func parseComposite(ft FilterType, s string) (*Filter, error) {
	children, err := parseFilterList(s)
	if err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return nil, ErrInvalidFilter
	}
	if ft == FilterAnd {
		return NewAndFilter(children...), nil
	}
	return NewOrFilter(children...), nil
}

func parseNotFilter(s string) (*Filter, error) {
	children, err := parseFilterList(s)
	if err != nil {
		return nil, err
	}
	if len(children) != 1 {
		return nil, fmt.Errorf("%w: ! takes exactly one filter", ErrInvalidFilter)
	}
	return NewNotFilter(children[0]), nil
}

func parseFilterList(s string) ([]*Filter, error) {
	var filters []*Filter
	s = strings.TrimSpace(s)

	for len(s) > 0 {
		if s[0] != '(' {
			return nil, ErrInvalidFilter
		}

		end, err := matchingParen(s)
		if err != nil {
			return nil, err
		}

		f, err := parseFilter(s[:end+1])
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)

		s = strings.TrimSpace(s[end+1:])
	}

	return filters, nil
}

// matchingParen returns the index of the parenthesis closing s[0].
// Escaped parentheses are written \28 and \29, so every literal one counts.
func matchingParen(s string) (int, error) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return -1, ErrUnbalancedParens
}

func parseSimpleFilter(s string) (*Filter, error) {
	if strings.ContainsAny(s, "()") {
		return nil, ErrInvalidFilter
	}

	idx := strings.IndexByte(s, '=')
	if idx < 0 {
		return nil, ErrInvalidFilter
	}

	attr := s[:idx]
	value := s[idx+1:]
	ft := FilterEquality

	if idx > 0 {
		switch s[idx-1] {
		case '>':
			ft, attr = FilterGreaterOrEqual, s[:idx-1]
		case '<':
			ft, attr = FilterLessOrEqual, s[:idx-1]
		case '~':
			ft, attr = FilterApproxMatch, s[:idx-1]
		case ':':
			return nil, ErrExtensibleMatch
		}
	}

	attr = strings.TrimSpace(attr)
	if attr == "" {
		return nil, ErrMissingAttribute
	}
	if strings.ContainsAny(attr, " \t*\\") {
		return nil, fmt.Errorf("%w: bad attribute %q", ErrInvalidFilter, attr)
	}

	if ft != FilterEquality {
		if strings.Contains(value, "*") {
			return nil, fmt.Errorf("%w: wildcard in %s assertion", ErrInvalidFilter, ft)
		}
		v, err := unescapeValue(value)
		if err != nil {
			return nil, err
		}
		return &Filter{Type: ft, Attribute: attr, Value: v}, nil
	}

	// Presence filter: (attr=*)
	if value == "*" {
		return NewPresentFilter(attr), nil
	}

	if strings.Contains(value, "*") {
		return parseSubstringFilter(attr, value)
	}

	v, err := unescapeValue(value)
	if err != nil {
		return nil, err
	}
	return NewEqualityFilter(attr, v), nil
}

func parseSubstringFilter(attr, value string) (*Filter, error) {
	parts := strings.Split(value, "*")
	sf := &SubstringFilter{Attribute: attr}

	for i, part := range parts {
		if part == "" {
			continue
		}
		v, err := unescapeValue(part)
		if err != nil {
			return nil, err
		}

		switch i {
		case 0:
			sf.Initial = v
		case len(parts) - 1:
			sf.Final = v
		default:
			sf.Any = append(sf.Any, v)
		}
	}

	return NewSubstringFilter(sf), nil
}

// unescapeValue decodes \XX hex escapes.
func unescapeValue(s string) ([]byte, error) {
	if !strings.Contains(s, `\`) {
		return []byte(s), nil
	}

	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			out = append(out, s[i])
			continue
		}
		if i+3 > len(s) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEscape, s[i:])
		}
		b, err := hex.DecodeString(s[i+1 : i+3])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEscape, s[i:i+3])
		}
		out = append(out, b[0])
		i += 2
	}
	return out, nil
}
