package aci

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/oba-ldap/aci/internal/envsubst"
)

// Loader errors.
var (
	ErrFileNotFound = errors.New("aci: file not found")
	ErrInvalidYAML  = errors.New("aci: invalid YAML format")
	ErrEmptyDraft   = errors.New("aci: empty draft")
	ErrNoMatches    = errors.New("aci: pattern matched no files")
)

// DraftFile is a draft together with the file it was read from.
type DraftFile struct {
	Path  string
	Draft *Draft
}

// LoadDraftFile loads a draft from a YAML file.
func LoadDraftFile(path string) (*Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("aci: failed to read file: %w", err)
	}

	d, err := ParseDraftYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// LoadDraftGlob loads every draft file matching pattern, which may use **
// to match any number of directories. Files are returned sorted by path.
func LoadDraftGlob(pattern string) ([]DraftFile, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("aci: bad pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatches, pattern)
	}
	sort.Strings(matches)

	files := make([]DraftFile, 0, len(matches))
	for _, path := range matches {
		d, err := LoadDraftFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, DraftFile{Path: path, Draft: d})
	}
	return files, nil
}

// ParseDraftYAML parses a draft from YAML bytes. Fields left out keep the
// values of NewDraft. Unknown keys are rejected.
func ParseDraftYAML(data []byte) (*Draft, error) {
	// Substitute environment variables
	data = envsubst.Expand(data)

	d := NewDraft()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDraft
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return d, nil
}

// MarshalDraftYAML renders a draft as YAML.
func MarshalDraftYAML(d *Draft) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("aci: failed to marshal draft: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("aci: failed to marshal draft: %w", err)
	}
	return buf.Bytes(), nil
}

