package schema

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrSchemaFileNotFound is returned when a definitions file does not exist.
var ErrSchemaFileNotFound = errors.New("schema: file not found")

// LoadFile loads attribute type definitions from the file at path.
func LoadFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSchemaFileNotFound
		}
		return nil, fmt.Errorf("schema: %w", err)
	}
	defer file.Close()

	c, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load reads attribute type definitions, one per line. A line may be
// prefixed with "attributeTypes:" and continued on lines starting with
// whitespace. Blank lines, # comments and other "name: value" lines are
// skipped.
func Load(r io.Reader) (*Catalog, error) {
	c := NewCatalog()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var current strings.Builder
	lineNo, startLine := 0, 0

	flush := func() error {
		def := strings.TrimSpace(current.String())
		current.Reset()
		if def == "" {
			return nil
		}
		at, err := ParseAttributeType(def)
		if err != nil {
			return fmt.Errorf("line %d: %w", startLine, err)
		}
		c.Add(at)
		return nil
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		// Skip empty lines and comments
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		// Handle line continuation (line starting with space)
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if current.Len() > 0 {
				current.WriteString(" ")
				current.WriteString(strings.TrimLeft(line, " \t"))
			}
			continue
		}

		if err := flush(); err != nil {
			return nil, err
		}

		if !strings.HasPrefix(line, "(") {
			name, value, ok := strings.Cut(line, ":")
			if !ok || !strings.EqualFold(strings.TrimSpace(name), "attributeTypes") {
				continue
			}
			line = strings.TrimSpace(value)
		}

		startLine = lineNo
		current.WriteString(line)
	}

	if err := flush(); err != nil {
		return nil, err
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}

	if err := c.resolveInheritance(); err != nil {
		return nil, err
	}
	return c, nil
}
