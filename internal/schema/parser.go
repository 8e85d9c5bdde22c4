package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Parser errors
var (
	ErrInvalidAttributeType = errors.New("schema: invalid attribute type definition")
	ErrMissingOID           = errors.New("schema: missing OID in definition")
	ErrUnterminatedString   = errors.New("schema: unterminated quoted string")
	ErrUnterminatedParens   = errors.New("schema: unterminated parentheses")
)

// term is one element of a definition body: a bare word, a 'quoted'
// string, or a parenthesized list.
type term struct {
	word   string
	list   []string
	isList bool
}

// values returns the strings a term stands for.
func (t term) values() []string {
	if t.isList {
		return t.list
	}
	return []string{t.word}
}

// ParseAttributeType parses an RFC 4512 attribute type description.
// Format: ( OID NAME 'name' SUP superior SYNTAX syntaxOID SINGLE-VALUE ... )
// Extensions (X-*) are skipped except X-ORIGIN, which is kept.
func ParseAttributeType(s string) (*AttributeType, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return nil, ErrInvalidAttributeType
	}

	terms, err := splitTerms(s[1 : len(s)-1])
	if err != nil {
		return nil, err
	}
	if len(terms) == 0 || terms[0].isList {
		return nil, ErrMissingOID
	}

	at := &AttributeType{
		OID:   terms[0].word,
		Usage: UserApplications,
	}

	for i := 1; i < len(terms); i++ {
		keyword := strings.ToUpper(terms[i].word)

		switch keyword {
		case "OBSOLETE":
			at.Obsolete = true
			continue
		case "SINGLE-VALUE":
			at.SingleValue = true
			continue
		case "NO-USER-MODIFICATION":
			at.NoUserMod = true
			continue
		}

		takesArg := keyword == "NAME" || keyword == "DESC" || keyword == "SUP" ||
			keyword == "EQUALITY" || keyword == "ORDERING" || keyword == "SUBSTR" ||
			keyword == "SYNTAX" || keyword == "USAGE" || strings.HasPrefix(keyword, "X-")
		if !takesArg {
			continue
		}
		if i+1 >= len(terms) {
			return nil, fmt.Errorf("%w: %s without value", ErrInvalidAttributeType, terms[i].word)
		}
		i++
		arg := terms[i]

		switch keyword {
		case "NAME":
			at.Names = arg.values()
			at.Name = at.Names[0]
		case "DESC":
			at.Desc = arg.word
		case "SUP":
			at.Superior = arg.word
		case "EQUALITY":
			at.Equality = arg.word
		case "SYNTAX":
			// A length bound such as {256} is not part of the OID.
			at.Syntax, _, _ = strings.Cut(arg.word, "{")
		case "USAGE":
			at.Usage = parseUsage(arg.word)
		case "X-ORIGIN":
			at.Origin = strings.Join(arg.values(), ", ")
		}
	}

	if at.Name == "" {
		at.Name = at.OID
		at.Names = []string{at.OID}
	}

	return at, nil
}

// splitTerms breaks a definition body into terms. Lists are one level
// deep and their items are separated by whitespace or '$'.
func splitTerms(s string) ([]term, error) {
	var terms []term
	inList := false
	var list []string

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isSpace(c), inList && c == '$':
			i++
			continue
		case c == '(':
			if inList {
				return nil, fmt.Errorf("%w: nested list", ErrInvalidAttributeType)
			}
			inList, list = true, nil
			i++
			continue
		case c == ')':
			if !inList {
				return nil, fmt.Errorf("%w: unexpected ')'", ErrInvalidAttributeType)
			}
			if len(list) == 0 {
				return nil, fmt.Errorf("%w: empty list", ErrInvalidAttributeType)
			}
			terms = append(terms, term{list: list, isList: true})
			inList = false
			i++
			continue
		}

		var word string
		if c == '\'' {
			end := strings.IndexByte(s[i+1:], '\'')
			if end < 0 {
				return nil, ErrUnterminatedString
			}
			word = s[i+1 : i+1+end]
			i += end + 2
		} else {
			j := i
			for j < len(s) && !isSpace(s[j]) && !strings.ContainsRune("()'$", rune(s[j])) {
				j++
			}
			word = s[i:j]
			i = j
		}

		if inList {
			list = append(list, word)
		} else {
			terms = append(terms, term{word: word})
		}
	}

	if inList {
		return nil, ErrUnterminatedParens
	}
	return terms, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// parseUsage parses an attribute usage value.
func parseUsage(s string) AttributeUsage {
	switch strings.ToLower(s) {
	case "directoryoperation":
		return DirectoryOperation
	case "distributedoperation":
		return DistributedOperation
	case "dsaoperation":
		return DSAOperation
	default:
		return UserApplications
	}
}
