package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Encode writes data to w as JSON or YAML. Table format is not an encoding
// and is rejected.
func Encode(w io.Writer, format Format, data any) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, data)
	case FormatYAML:
		return encodeYAML(w, data)
	default:
		return fmt.Errorf("output: %s is not an encoding", format)
	}
}

// encodeJSON writes indented JSON. ACI text is full of <, > and &, which
// are kept literal.
func encodeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// encodeYAML writes YAML with multi-line strings, such as ACI text copied
// from an LDIF file, as literal blocks.
func encodeYAML(w io.Writer, data any) error {
	var doc yaml.Node
	if err := doc.Encode(data); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	literalBlocks(&doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		_ = enc.Close()
		return fmt.Errorf("output: %w", err)
	}
	return enc.Close()
}

func literalBlocks(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" && strings.Contains(n.Value, "\n") {
		n.Style = yaml.LiteralStyle
	}
	for _, c := range n.Content {
		literalBlocks(c)
	}
}
