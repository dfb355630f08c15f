// Package output renders command results as plain text, JSON, or YAML.
// It is pure formatting: no state, no knowledge of where values came from.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/gsys/gsys/internal/errors"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format int

const (
	FormatPlain Format = iota
	FormatJSON
	FormatYAML
)

// String returns the flag spelling of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "plain"
	}
}

// ParseFormat maps the --json/--yaml flag pair to a Format. JSON wins when
// both are set, matching flag precedence in the original tool.
func ParseFormat(jsonFlag, yamlFlag bool) Format {
	switch {
	case jsonFlag:
		return FormatJSON
	case yamlFlag:
		return FormatYAML
	default:
		return FormatPlain
	}
}

// FormatFromString parses a config-file format value.
func FormatFromString(s string) (Format, error) {
	switch s {
	case "", "plain":
		return FormatPlain, nil
	case "json":
		return FormatJSON, nil
	case "yaml":
		return FormatYAML, nil
	}
	return FormatPlain, errors.New(errors.ErrConfig,
		fmt.Sprintf("'%s' is not a valid output format", s),
		"Use one of: plain, json, yaml")
}

// Write renders v to w in the given format. Pretty only affects JSON;
// YAML is always indented and plain output is already human-oriented.
func Write(w io.Writer, f Format, pretty bool, v interface{}) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		if pretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(v); err != nil {
			return errors.WrapWithCode(err, errors.ErrRender, "Failed to encode JSON output", "")
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.WrapWithCode(err, errors.ErrRender, "Failed to encode YAML output", "")
		}
		return enc.Close()

	default:
		return writePlain(w, v)
	}
}

// writePlain prints scalars bare (so `gsys get hostname` composes with
// shell pipelines) and renders composite values as YAML, the most
// readable of the structured encodings.
func writePlain(w io.Writer, v interface{}) error {
	switch reflect.Indirect(reflect.ValueOf(v)).Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.WrapWithCode(err, errors.ErrRender, "Failed to render output", "")
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}
