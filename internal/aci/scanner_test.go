package aci

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleACI = `(target="ldap:///dc=example,dc=com")(targetattr="*")(version 3.0; acl "test1"; allow(read) userdn="ldap:///anyone";)`

// pairs reduces records to name/operator/value triples for comparison.
func pairs(attrs []Attribute) [][3]string {
	out := make([][3]string, len(attrs))
	for i, a := range attrs {
		out[i] = [3]string{a.Name, a.Operator, a.Value}
	}
	return out
}

func TestScan_WellFormed(t *testing.T) {
	attrs, err := Scan(exampleACI)
	require.NoError(t, err)

	assert.Equal(t, [][3]string{
		{"target", "=", "ldap:///dc=example,dc=com"},
		{"targetattr", "=", "*"},
		{"version", "", "3.0"},
		{"acl", "", "test1"},
		{"allow", "", "read"},
		{"userdn", "=", "ldap:///anyone"},
	}, pairs(attrs))
}

func TestScan_Offsets(t *testing.T) {
	attrs, err := Scan(`(target="x")`)
	require.NoError(t, err)
	require.Len(t, attrs, 1)

	assert.Equal(t, 1, attrs[0].Start)
	assert.Equal(t, 10, attrs[0].End)
}

func TestScan_Connectives(t *testing.T) {
	text := `(version 3.0; acl "c"; allow(read,search) userdn="ldap:///anyone" or userdn = "ldap:///self" AND ip="10.0.0.1";)`
	attrs, err := Scan(text)
	require.NoError(t, err)

	assert.Equal(t, [][3]string{
		{"version", "", "3.0"},
		{"acl", "", "c"},
		{"allow", "", "read,search"},
		{"userdn", "=", "ldap:///anyone"},
		{"", "or", ""},
		{"userdn", "=", "ldap:///self"},
		{"", "and", ""},
		{"ip", "=", "10.0.0.1"},
	}, pairs(attrs))

	or := attrs[4]
	assert.True(t, or.IsConnective())
	assert.Equal(t, "or", text[or.Start:or.End])
}

func TestScan_Parentheses(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		value string
	}{
		{
			name:  "unquoted filter",
			text:  `(targetfilter=(|(ou=a)(ou=b)))`,
			value: "(|(ou=a)(ou=b))",
		},
		{
			name:  "quoted filter",
			text:  `(targetfilter="(&(objectClass=person)(!(cn=admin)))")`,
			value: "(&(objectClass=person)(!(cn=admin)))",
		},
		{
			name:  "escaped quote",
			text:  `(targetfilter="(cn=a\"b)")`,
			value: `(cn=a\"b)`,
		},
		{
			name:  "escaped backslash before closing quote",
			text:  `(targetfilter="a\\")`,
			value: `a\\`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, err := Scan(tt.text)
			require.NoError(t, err)
			require.Len(t, attrs, 1)
			assert.Equal(t, "targetfilter", attrs[0].Name)
			assert.Equal(t, tt.value, attrs[0].Value)
		})
	}
}

func TestScan_Operators(t *testing.T) {
	tests := []struct {
		text     string
		operator string
		value    string
	}{
		{`(targetattr!="userPassword")`, "!=", "userPassword"},
		{`(targetattr != "userPassword")`, "!=", "userPassword"},
		{`(ssf>="128")`, ">=", "128"},
		{`(ssf<"56")`, "<", "56"},
		// Operator bytes after value content are literal.
		{`(target=ldap:///cn=a=b)`, "=", "ldap:///cn=a=b"},
		{`(targetattr=cn)`, "=", "cn"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			attrs, err := Scan(tt.text)
			require.NoError(t, err)
			require.Len(t, attrs, 1)
			assert.Equal(t, tt.operator, attrs[0].Operator)
			assert.Equal(t, tt.value, attrs[0].Value)
		})
	}
}

func TestScan_Multiline(t *testing.T) {
	text := "(target=\"ldap:///ou=people,dc=example,dc=com\")\n" +
		"(targetattr=\"cn || sn\")\r\n" +
		"(version 3.0;\n  acl \"multi\";\n  deny(write) userdn=\"ldap:///self\";)\n"

	attrs, err := Scan(text)
	require.NoError(t, err)

	assert.Equal(t, [][3]string{
		{"target", "=", "ldap:///ou=people,dc=example,dc=com"},
		{"targetattr", "=", "cn || sn"},
		{"version", "", "3.0"},
		{"acl", "", "multi"},
		{"deny", "", "write"},
		{"userdn", "=", "ldap:///self"},
	}, pairs(attrs))
}

func TestScan_UnquotedLastClause(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		pairs [][3]string
	}{
		{
			name: "bare group",
			text: `(targetattr=cn)(targetscope=subtree)`,
			pairs: [][3]string{
				{"targetattr", "=", "cn"},
				{"targetscope", "=", "subtree"},
			},
		},
		{
			name: "bind rule ends version group",
			text: `(version 3.0; acl "x"; allow(read) ssf>=128)`,
			pairs: [][3]string{
				{"version", "", "3.0"},
				{"acl", "", "x"},
				{"allow", "", "read"},
				{"ssf", ">=", "128"},
			},
		},
		{
			name: "grouped bind rule",
			text: `(version 3.0; acl "x"; allow(read) (userdn="ldap:///a" or userdn="ldap:///b");)(targetattr="cn")`,
			pairs: [][3]string{
				{"version", "", "3.0"},
				{"acl", "", "x"},
				{"allow", "", "read"},
				{"userdn", "=", "ldap:///a"},
				{"", "or", ""},
				{"userdn", "=", "ldap:///b"},
				{"targetattr", "=", "cn"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, err := Scan(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.pairs, pairs(attrs))
		})
	}
}

func TestScan_EscapedBackslash(t *testing.T) {
	attrs, err := Scan(`(targetfilter="a\\")(targetattr="cn")`)
	require.NoError(t, err)
	require.Len(t, attrs, 2)
	assert.Equal(t, `a\\`, attrs[0].Value)
	assert.Equal(t, "targetattr", attrs[1].Name)
	assert.Equal(t, "cn", attrs[1].Value)
}

func TestScan_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		records int
		reason  error
		pos     int
	}{
		{
			name:    "unclosed group",
			text:    `(targetattr="cn"`,
			records: 1,
			reason:  ErrUnclosedGroup,
			pos:     16,
		},
		{
			name:    "unterminated quote",
			text:    `(target="ldap:///dc=x")(targetattr="cn)`,
			records: 1,
			reason:  ErrUnterminatedValue,
			pos:     39,
		},
		{
			name:    "name without value",
			text:    `(target="ldap:///dc=x")(version)`,
			records: 1,
			reason:  ErrDanglingName,
			pos:     31,
		},
		{
			name:    "input ends in name",
			text:    `(version 3.0; acl`,
			records: 1,
			reason:  ErrDanglingName,
			pos:     17,
		},
		{
			name:    "version group closed only by bind rule group",
			text:    `(version 3.0; acl "x"; allow(read) (userdn="ldap:///a" or userdn="ldap:///b")`,
			records: 6,
			reason:  ErrUnclosedGroup,
			pos:     77,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, err := Scan(tt.text)
			require.Error(t, err)
			assert.Len(t, attrs, tt.records)
			assert.True(t, errors.Is(err, tt.reason), "got %v", err)

			var scanErr *ScanError
			require.ErrorAs(t, err, &scanErr)
			assert.Equal(t, tt.pos, scanErr.Position)
		})
	}
}

func TestScan_Empty(t *testing.T) {
	attrs, err := Scan("")
	assert.NoError(t, err)
	assert.Empty(t, attrs)

	attrs, err = Scan("  \n\t ")
	assert.NoError(t, err)
	assert.Empty(t, attrs)
}

func TestScan_Reentrant(t *testing.T) {
	first, err := Scan(exampleACI)
	require.NoError(t, err)
	second, err := Scan(exampleACI)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "abc", unquote(`"abc"`))
	assert.Equal(t, "abc", unquote(`"abc`))
	assert.Equal(t, "abc", unquote(`abc"`))
	assert.Equal(t, `"abc"`, unquote(`""abc""`))
	assert.Equal(t, "", unquote(`"`))
}
