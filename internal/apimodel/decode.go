package apimodel

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMissingName is returned when a description has no package name.
var ErrMissingName = errors.New("package description has no name")

// Decode reads one package description. Unknown fields are ignored since the
// documents come from an external extraction tool.
func Decode(r io.Reader) (*PackageDescription, error) {
	var desc PackageDescription
	if err := json.NewDecoder(r).Decode(&desc); err != nil {
		return nil, fmt.Errorf("decode package description: %w", err)
	}
	if strings.TrimSpace(desc.Name) == "" {
		return nil, ErrMissingName
	}
	if desc.Exports == nil {
		desc.Exports = map[string]ExportedItem{}
	}
	return &desc, nil
}

// Markup is summary text. It decodes from a plain string or from an
// api-extractor markup array, whose text-bearing elements are concatenated.
type Markup string

type markupElement struct {
	Kind     string          `json:"kind"`
	Text     string          `json:"text"`
	Elements []markupElement `json:"elements"`
}

func (m *Markup) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Markup(s)
		return nil
	}
	var elems []markupElement
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("summary: expected string or markup array: %w", err)
	}
	var b strings.Builder
	writeMarkup(&b, elems)
	*m = Markup(strings.TrimSpace(b.String()))
	return nil
}

func writeMarkup(b *strings.Builder, elems []markupElement) {
	for _, e := range elems {
		switch e.Kind {
		case "code":
			b.WriteString("`" + e.Text + "`")
		case "paragraph":
			b.WriteString("\n\n")
		default:
			b.WriteString(e.Text)
		}
		writeMarkup(b, e.Elements)
	}
}

// References is an extends/implements clause. It decodes from a string or a
// list of strings, joined with ", ".
type References string

func (r *References) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*r = References(strings.Join(list, ", "))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = References(s)
	return nil
}
