package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleACI = `(target="ldap:///dc=example,dc=com")(targetattr="*")(version 3.0; acl "test1"; allow(read) userdn="ldap:///anyone";)`

const exampleDraft = `name: test1
target: dc=example,dc=com
rights:
  - right: read
    selected: true
bindRules:
  - type: userdn
    value: ldap:///anyone
`

// runCLI runs the command line with an isolated configuration directory.
func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	code := run(append([]string{"acitool"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func writeDraft(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_Help(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"help command", []string{"help"}},
		{"short flag", []string{"-h"}},
		{"long flag", []string{"--help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, code := runCLI(t, tt.args...)
			assert.Equal(t, 0, code)
			assert.Contains(t, stdout, "acitool")
		})
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	_, stderr, code := runCLI(t, "unknown")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown command")
}

func TestRun_Version(t *testing.T) {
	stdout, _, code := runCLI(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "acitool version "+version)

	stdout, _, code = runCLI(t, "version", "--short")
	assert.Equal(t, 0, code)
	assert.Equal(t, version+"\n", stdout)

	stdout, _, code = runCLI(t, "version", "-o", "json")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, `"version": "`+version+`"`)
}

func TestRun_InvalidOutputFormat(t *testing.T) {
	_, stderr, code := runCLI(t, "-o", "xml", "version")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid output format")
}

func TestRun_MissingConfigFile(t *testing.T) {
	_, stderr, code := runCLI(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "version")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "file not found")
}

func TestRun_ConfigOutputFormat(t *testing.T) {
	cfg := writeDraft(t, t.TempDir(), "config.yaml", "output:\n  format: yaml\n")

	stdout, _, code := runCLI(t, "--config", cfg, "name", exampleACI)
	assert.Equal(t, 0, code)
	assert.Equal(t, "name: test1\n", stdout)
}

func TestScan(t *testing.T) {
	stdout, stderr, code := runCLI(t, "scan", "-o", "json", exampleACI)
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, `"name": "targetattr"`)
	assert.Contains(t, stdout, `"value": "ldap:///anyone"`)
}

func TestScan_Malformed(t *testing.T) {
	stdout, stderr, code := runCLI(t, "scan", `(targetattr="cn")(version 3.0; acl "x`)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "targetattr")
	assert.Contains(t, stderr, "^ ")
	assert.Contains(t, stderr, "unterminated value")
	assert.NotContains(t, stderr, "Error:")
}

func TestScan_Stdin(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	root := newRootCmd(newApp(&stdout, &stderr))
	root.SetIn(strings.NewReader(exampleACI + "\n"))
	root.SetArgs([]string{"name", "-"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "test1\n", stdout.String())
}

func TestName(t *testing.T) {
	stdout, _, code := runCLI(t, "name", exampleACI)
	assert.Equal(t, 0, code)
	assert.Equal(t, "test1\n", stdout)

	_, stderr, code := runCLI(t, "name", `(targetattr="cn")`)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "no acl name")
}

func TestAllow(t *testing.T) {
	tests := []struct {
		name string
		aci  string
		want string
	}{
		{"allow", exampleACI, "true\n"},
		{"deny", `(version 3.0; acl "x"; deny(all) userdn="ldap:///anyone";)`, "false\n"},
		{"malformed", `(version 3.0; acl "x`, "false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, code := runCLI(t, "allow", tt.aci)
			assert.Equal(t, 0, code)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestDescribe(t *testing.T) {
	stdout, _, code := runCLI(t, "describe", "-o", "yaml", exampleACI)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "name: test1")
	assert.Contains(t, stdout, "permission: allow")
	assert.Contains(t, stdout, "complete: true")

	stdout, _, code = runCLI(t, "describe", exampleACI)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Permission")
	assert.Contains(t, stdout, "dc=example,dc=com")
}

func TestDecode(t *testing.T) {
	stdout, _, code := runCLI(t, "decode", exampleACI)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "name: test1")
	assert.Contains(t, stdout, "target: dc=example,dc=com")
}

func TestAssemble(t *testing.T) {
	path := writeDraft(t, t.TempDir(), "test1.yaml", exampleDraft)

	stdout, _, code := runCLI(t, "assemble", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, exampleACI+"\n", stdout)
}

func TestAssemble_Glob(t *testing.T) {
	dir := t.TempDir()
	writeDraft(t, dir, "a/one.yaml", exampleDraft)
	writeDraft(t, dir, "b/c/two.yaml", strings.Replace(exampleDraft, "test1", "test2", 1))

	stdout, _, code := runCLI(t, "assemble", "-o", "json", filepath.Join(dir, "**", "*.yaml"))
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, `acl \"test1\"`)
	assert.Contains(t, stdout, `acl \"test2\"`)
}

func TestAssemble_Validate(t *testing.T) {
	bad := exampleDraft + "targetAttrs: [nosuchattr]\n"
	path := writeDraft(t, t.TempDir(), "bad.yaml", bad)

	stdout, stderr, code := runCLI(t, "assemble", path)
	assert.Equal(t, 0, code, "validation is advisory without --validate")
	assert.Contains(t, stdout, `targetattr="nosuchattr"`)
	assert.Contains(t, stderr, "nosuchattr")

	stdout, stderr, code = runCLI(t, "assemble", "--validate", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "1 of 1 drafts failed validation")
}

func TestAssemble_Errors(t *testing.T) {
	_, stderr, code := runCLI(t, "assemble", filepath.Join(t.TempDir(), "*.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "matched no files")

	path := writeDraft(t, t.TempDir(), "notarget.yaml", "name: x\n")
	_, stderr, code = runCLI(t, "assemble", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "target is required")

	_, stderr, code = runCLI(t, "assemble", "--watch", "a.yaml", "b.yaml")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "exactly one")
}

func TestAttrs(t *testing.T) {
	stdout, _, code := runCLI(t, "attrs", "-o", "json")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, `"name": "cn"`)
	assert.NotContains(t, stdout, `"name": "aci"`)

	stdout, _, code = runCLI(t, "attrs", "--all")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "directoryOperation")
}

func TestAttrs_SchemaFile(t *testing.T) {
	dir := t.TempDir()
	schemaFile := writeDraft(t, dir, "local.schema",
		"attributeTypes: ( 1.3.6.1.4.1.99999.1 NAME 'badgeNumber' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )\n")
	cfg := writeDraft(t, dir, "config.yaml", "schema:\n  file: "+schemaFile+"\n")

	stdout, _, code := runCLI(t, "--config", cfg, "attrs")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "badgeNumber")
}

func TestLDIF(t *testing.T) {
	stdout, _, code := runCLI(t, "ldif", "--dn", "ou=people,dc=example,dc=com", exampleACI)
	assert.Equal(t, 0, code)
	assert.Equal(t, "dn: ou=people,dc=example,dc=com\n"+
		"changetype: modify\n"+
		"add: aci\n"+
		"aci: "+exampleACI+"\n"+
		"-\n", stdout)

	stdout, _, code = runCLI(t, "ldif", "--dn", "ou=people,dc=example,dc=com", "--delete", exampleACI)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "delete: aci\n")
}

func TestLDIF_Errors(t *testing.T) {
	_, stderr, code := runCLI(t, "ldif", exampleACI)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `"dn" not set`)

	_, stderr, code = runCLI(t, "ldif", "--dn", "not a dn", exampleACI)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid DN")

	_, stderr, code = runCLI(t, "ldif", "--dn", "dc=x", "--delete", "--replace", "old", exampleACI)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "mutually exclusive")
}

func TestDirectoryCommands_NoServer(t *testing.T) {
	_, stderr, code := runCLI(t, "fetch", "--base", "dc=example,dc=com")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "server URL is required")

	_, stderr, code = runCLI(t, "fetch")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "no base DN")

	_, stderr, code = runCLI(t, "apply", "--dn", "dc=example,dc=com", exampleACI)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "server URL is required")
}
