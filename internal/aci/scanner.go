package aci

import (
	"strings"
)

// scanner holds the state of a single Scan call.
type scanner struct {
	src   string
	start int
	attrs []Attribute

	// depth counts the groups opened and not yet closed, including the
	// top-level clause group and bind rule groups inside it.
	depth int
}

// Scan decomposes ACI text into attribute records.
//
// The text is read left to right: every parenthesized clause yields one
// record, the version segment yields one record per keyword (version, acl,
// allow/deny and each bind rule) and every "and"/"or" between bind rules
// yields a connective record.
//
// Scan does not stop at the first oddity. Stray separators and whitespace
// are skipped, values may be quoted on one side only and unquoted values may
// contain balanced parentheses. When the text ends before a clause is
// complete, Scan returns the records parsed so far and a *ScanError.
func Scan(text string) ([]Attribute, error) {
	s := &scanner{src: text}
	err := s.scan()
	return s.attrs, err
}

func (s *scanner) scan() error {
	for i := 0; i < len(s.src); i++ {
		c := s.src[i]
		if isSpace(c) {
			continue
		}

		if c == '(' {
			i++
			s.depth++
		}

		next, err := s.scanName(i)
		if err != nil {
			return err
		}
		i = next
	}
	return nil
}

// scanName reads clause names starting at i and hands each one to
// scanValue. It returns the index of the parenthesis closing the top-level
// group, or len(src) when the input is exhausted.
func (s *scanner) scanName(i int) (int, error) {
	var name strings.Builder

	for ; i < len(s.src); i++ {
		c := s.src[i]

		switch {
		case c == '\n' || c == '\r':
			continue
		case c == ' ' || c == '\t':
			if name.Len() == 0 {
				continue
			}
		case c == '(':
			if name.Len() == 0 {
				s.depth++
				continue
			}
		case isOperatorByte(c):
			// Operator is read again by scanValue.
		case c == ')':
			if name.Len() > 0 {
				return i, &ScanError{Position: i, Reason: ErrDanglingName}
			}
			if s.depth > 0 {
				s.depth--
			}
			if s.depth > 0 {
				continue
			}
			return i, nil
		case c == ';':
			continue
		default:
			if name.Len() == 0 {
				s.start = i
			}
			name.WriteByte(c)
			continue
		}

		word := name.String()
		name.Reset()

		if lower := strings.ToLower(word); lower == ConnectiveAnd || lower == ConnectiveOr {
			s.attrs = append(s.attrs, Attribute{
				Operator: lower,
				Start:    s.start,
				End:      i,
			})
			s.start = i + 1
			if c == '(' {
				s.depth++
			}
			continue
		}

		// allow(read) style values own the parenthesis that follows the name.
		paren := c == '('
		if c == ' ' || c == '\t' || paren {
			i++
		}

		next, err := s.scanValue(word, i, paren)
		if err != nil {
			return next, err
		}
		i = next - 1
	}

	if name.Len() > 0 {
		return i, &ScanError{Position: i, Reason: ErrDanglingName}
	}
	if s.depth > 0 {
		return i, &ScanError{Position: i, Reason: ErrUnclosedGroup}
	}
	return i, nil
}

// scanValue reads the operator and value of the clause named name starting
// at i. It returns the index just past the value. An unquoted value ended by
// a ')' it did not open returns the index of that ')', which closes a group
// for scanName; when paren is set the value owns the first unmatched ')'.
func (s *scanner) scanValue(name string, i int, paren bool) (int, error) {
	var (
		operator strings.Builder
		value    strings.Builder
		quoted   bool
		depth    int
	)

	for ; i < len(s.src); i++ {
		c := s.src[i]
		found, closing := false, false

		switch {
		case !quoted && value.Len() == 0 && isOperatorByte(c):
			operator.WriteByte(c)
		case c == '"' && !s.escaped(i):
			value.WriteByte(c)
			quoted = !quoted
			found = !quoted
		case quoted:
			value.WriteByte(c)
		case c == '(':
			depth++
			value.WriteByte(c)
		case c == ')':
			if depth == 0 {
				found = true
				closing = !paren
				break
			}
			depth--
			value.WriteByte(c)
			found = depth == 0
		case c == ';':
			found = true
		case isSpace(c) && value.Len() == 0:
		default:
			value.WriteByte(c)
		}

		if found {
			s.attrs = append(s.attrs, Attribute{
				Name:     name,
				Operator: operator.String(),
				Value:    unquote(value.String()),
				Start:    s.start,
				End:      i,
			})
			s.start = i + 1
			if closing {
				return i, nil
			}
			return i + 1, nil
		}
	}

	return i, &ScanError{Position: i, Reason: ErrUnterminatedValue}
}

// escaped reports whether the byte at i follows an odd run of backslashes.
func (s *scanner) escaped(i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s.src[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

// unquote strips one trailing and one leading double quote. Each side is
// handled on its own so half-quoted values are still unwrapped.
func unquote(v string) string {
	v = strings.TrimSuffix(v, `"`)
	return strings.TrimPrefix(v, `"`)
}

func isOperatorByte(c byte) bool {
	switch c {
	case '|', '<', '>', '!', '=':
		return true
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
