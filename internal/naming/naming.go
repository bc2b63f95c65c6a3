// Package naming derives file names, link targets and anchors from symbol
// names. Page paths and index links both come from PagePath so they cannot
// diverge.
package naming

import (
	"path"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// PageDir is the output sub-directory holding one page per symbol.
	PageDir = "api"
	// IndexPath is the index page, relative to the output root.
	IndexPath = "index.html"

	pageExt = ".html"
	empty   = "_"
)

// Transliterate lower-cases name and joins its words with hyphens.
//
// Diacritics are stripped, camelCase and acronym boundaries start new
// words, and every run of non-alphanumeric characters becomes a single
// hyphen:
//
//	ApiDocumenter -> api-documenter
//	HTTPServer    -> http-server
//	foo_bar.baz   -> foo-bar-baz
func Transliterate(name string) string {
	folded, _, err := transform.String(stripMarks(), name)
	if err != nil {
		folded = name
	}

	words := splitWords([]rune(folded))
	if len(words) == 0 {
		return empty
	}
	return strings.ToLower(strings.Join(words, "-"))
}

// PagePath returns the slash-separated page path for a symbol, relative to
// the output root. The index links to exactly this path.
func PagePath(symbol string) string {
	return path.Join(PageDir, Transliterate(symbol)+pageExt)
}

// Anchors assigns a unique in-page anchor to each name, in order. A clash
// with an anchor already handed out gets the lowest free numeric suffix.
func Anchors(names []string) map[string]string {
	out := make(map[string]string, len(names))
	taken := make(map[string]struct{}, len(names))
	for _, n := range names {
		base := Transliterate(n)
		anchor := base
		for i := 2; ; i++ {
			if _, ok := taken[anchor]; !ok {
				break
			}
			anchor = base + "-" + strconv.Itoa(i)
		}
		taken[anchor] = struct{}{}
		out[n] = anchor
	}
	return out
}

func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

func splitWords(rs []rune) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for i, r := range rs {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}
