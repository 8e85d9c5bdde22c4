package aci

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleDraftYAML = `name: ${ACI_NAME}
target: ${ACI_BASE:-dc=example,dc=com}
rights:
  - right: read
    selected: true
bindRules:
  - type: userdn
    value: ldap:///anyone
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDraftFile(t *testing.T) {
	t.Setenv("ACI_NAME", "test1")

	path := filepath.Join(t.TempDir(), "draft.yaml")
	writeFile(t, path, exampleDraftYAML)

	d, err := LoadDraftFile(path)
	require.NoError(t, err)

	assert.Equal(t, "test1", d.Name)
	assert.Equal(t, "dc=example,dc=com", d.Target)
	assert.Equal(t, OpEqual, d.TargetAttrOperator)
	assert.Equal(t, TimeUnset, d.TimeOfDay.Start)

	text, err := Assemble(d)
	require.NoError(t, err)
	assert.Equal(t, exampleACI, text)
}

func TestLoadDraftFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadDraftFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, ErrFileNotFound)

	empty := filepath.Join(dir, "empty.yaml")
	writeFile(t, empty, "")
	_, err = LoadDraftFile(empty)
	assert.ErrorIs(t, err, ErrEmptyDraft)

	unknown := filepath.Join(dir, "unknown.yaml")
	writeFile(t, unknown, "name: x\ncolour: blue\n")
	_, err = LoadDraftFile(unknown)
	assert.ErrorIs(t, err, ErrInvalidYAML)

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "name: [x\n")
	_, err = LoadDraftFile(broken)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestLoadDraftGlob(t *testing.T) {
	t.Setenv("ACI_NAME", "globbed")

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b", "two.yaml"), exampleDraftYAML)
	writeFile(t, filepath.Join(dir, "a", "deep", "one.yaml"), exampleDraftYAML)
	writeFile(t, filepath.Join(dir, "a", "notes.txt"), "not a draft")

	files, err := LoadDraftGlob(filepath.Join(dir, "**", "*.yaml"))
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, filepath.Join(dir, "a", "deep", "one.yaml"), files[0].Path)
	assert.Equal(t, filepath.Join(dir, "b", "two.yaml"), files[1].Path)
	assert.Equal(t, "globbed", files[1].Draft.Name)

	_, err = LoadDraftGlob(filepath.Join(dir, "*.yml"))
	assert.ErrorIs(t, err, ErrNoMatches)
}

func TestMarshalDraftYAML_RoundTrip(t *testing.T) {
	for _, d := range []*Draft{helpdeskDraft(), managersDraft()} {
		data, err := MarshalDraftYAML(d)
		require.NoError(t, err)

		got, err := ParseDraftYAML(data)
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
}

