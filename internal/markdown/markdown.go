// Package markdown renders package summaries to HTML.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/safehtml"
	"github.com/google/safehtml/uncheckedconversions"
	"github.com/yuin/goldmark"
)

// md is configured without html.WithUnsafe, so raw HTML in a summary is
// dropped rather than passed through.
var md = goldmark.New()

// RenderSummary converts summary markdown into trusted HTML. Blank input
// yields empty HTML.
func RenderSummary(summary string) (safehtml.HTML, error) {
	if strings.TrimSpace(summary) == "" {
		return safehtml.HTML{}, nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(summary), &buf); err != nil {
		return safehtml.HTML{}, fmt.Errorf("render summary: %w", err)
	}
	return uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(buf.String()), nil
}
