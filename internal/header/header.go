// Package header tokenizes the front-matter block of an event document into
// a field mapping. The format is deliberately not YAML: lines split on the
// first colon, one special-cased list key, and everything else is an opaque
// scalar kept verbatim for the builder to interpret.
package header

import (
	"fmt"
	"strings"
)

// delimiter opens and closes the header block.
const delimiter = "---"

// listKey is the single key whose value is parsed as a list. Every other
// key yields a scalar, bracketed or not.
const listKey = "daysOfWeek"

// Value is a two-case union: either one scalar or an ordered list of
// scalars. Keeping the shapes explicit makes a scalar-as-list access a
// descriptive error instead of a silent misread.
type Value struct {
	scalar string
	list   []string
	isList bool
}

func scalarValue(s string) Value     { return Value{scalar: s} }
func listValue(items []string) Value { return Value{list: items, isList: true} }

// Scalar returns the scalar form, or false if the value is a list.
func (v Value) Scalar() (string, bool) {
	if v.isList {
		return "", false
	}
	return v.scalar, true
}

// List returns the list form, or false if the value is a scalar.
func (v Value) List() ([]string, bool) {
	if !v.isList {
		return nil, false
	}
	return v.list, true
}

// Fields maps header keys to their values for one document. Duplicate keys
// resolve to the last occurrence.
type Fields map[string]Value

// Scalar fetches key as a single value; missing keys and list-shaped values
// are errors naming the field.
func (f Fields) Scalar(key string) (string, error) {
	v, ok := f[key]
	if !ok {
		return "", fmt.Errorf("has no %q", key)
	}
	s, ok := v.Scalar()
	if !ok {
		return "", fmt.Errorf("%q is a list, expected a single value", key)
	}
	return s, nil
}

// List fetches key as a list; missing keys and scalar-shaped values are
// errors naming the field.
func (f Fields) List(key string) ([]string, error) {
	v, ok := f[key]
	if !ok {
		return nil, fmt.Errorf("has no %q", key)
	}
	items, ok := v.List()
	if !ok {
		return nil, fmt.Errorf("%q is not a list", key)
	}
	return items, nil
}

// Parse scans text for a header block delimited by "---" lines and returns
// its field mapping. Text before the opening delimiter and after the
// closing one is ignored; a document with no opening delimiter yields an
// empty mapping so that the builder can report which field is missing.
func Parse(text string) (Fields, error) {
	fields := make(Fields)
	lines := strings.Split(text, "\n")
	// CRLF documents are accepted; the delimiter match and value handling
	// below assume the \r is already gone.
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	inHeader := false
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if line == delimiter {
			if inHeader {
				break
			}
			inHeader = true
			continue
		}
		if !inHeader {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("header line %q has no ':'", line)
		}

		if key == listKey {
			if value == "" {
				// Block form: consume the contiguous run of "- item" lines.
				// A delimiter line also starts with '-', so it terminates
				// the run instead of becoming an empty item.
				items := []string{}
				for i+1 < len(lines) && lines[i+1] != delimiter &&
					strings.HasPrefix(strings.TrimSpace(lines[i+1]), "-") {
					i++
					items = append(items, strings.TrimLeft(lines[i], "- \t"))
				}
				fields[key] = listValue(items)
				continue
			}
			items, err := parseInlineList(value)
			if err != nil {
				return nil, err
			}
			fields[key] = listValue(items)
			continue
		}

		fields[key] = scalarValue(strings.TrimLeft(value, " \t"))
	}

	return fields, nil
}

// parseInlineList splits a bracketed "[a, b, c]" value into items, trimming
// the leading whitespace of each. Trailing content outside the brackets is
// ignored.
func parseInlineList(value string) ([]string, error) {
	open := strings.IndexByte(value, '[')
	if open < 0 {
		return nil, fmt.Errorf("cannot find opening [ on list")
	}
	rest := value[open+1:]
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return nil, fmt.Errorf("cannot find closing ] on list")
	}

	parts := strings.Split(rest[:end], ",")
	items := make([]string, len(parts))
	for i, p := range parts {
		items[i] = strings.TrimLeft(p, " \t")
	}
	return items, nil
}
