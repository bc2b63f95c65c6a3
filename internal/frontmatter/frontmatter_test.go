package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuild_LayoutBlock(t *testing.T) {
	out, err := Build(map[string]any{"layout": "api"}, []byte("<div></div>\n"))
	require.NoError(t, err)
	require.Equal(t, "---\nlayout: api\n---\n<div></div>\n", string(out))
}

func TestBuild_EmptyLayoutIsQuoted(t *testing.T) {
	out, err := Build(map[string]any{"layout": ""}, []byte("x"))
	require.NoError(t, err)
	require.Equal(t, "---\nlayout: \"\"\n---\nx", string(out))
}

func TestBuild_KeysSorted(t *testing.T) {
	out, err := Build(map[string]any{"title": "Foo", "layout": "page", "beta": true}, nil)
	require.NoError(t, err)
	require.Equal(t, "---\nbeta: true\nlayout: page\ntitle: Foo\n---\n", string(out))
}

func TestSerializeYAML_StringsStayStrings(t *testing.T) {
	out, err := SerializeYAML(map[string]any{"layout": "true"})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, yaml.Unmarshal(out, &fields))
	require.Equal(t, "true", fields["layout"])
}

func TestSerializeYAML_UnsupportedType(t *testing.T) {
	_, err := SerializeYAML(map[string]any{"x": 1.5})
	require.Error(t, err)
}

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("<div>hello</div>\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_RoundTripsBuild(t *testing.T) {
	doc, err := Build(map[string]any{"layout": "default"}, []byte("<p>body</p>\n"))
	require.NoError(t, err)

	fm, body, had, err := Split(doc)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "layout: default\n", string(fm))
	require.Equal(t, "<p>body</p>\n", string(body))
}

func TestSplit_EmptyBlock(t *testing.T) {
	fm, body, had, err := Split([]byte("---\n---\nbody"))
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, "body", string(body))
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	_, _, had, err := Split([]byte("---\nlayout: x\n<div>"))
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestFingerprint_StableAndIgnoresOwnField(t *testing.T) {
	body := []byte("<div>x</div>")
	a, err := Fingerprint(map[string]any{"layout": "default"}, body)
	require.NoError(t, err)
	require.NotEmpty(t, a)

	b, err := Fingerprint(map[string]any{"layout": "default", FingerprintField: a}, body)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := Fingerprint(map[string]any{"layout": "default"}, []byte("<div>y</div>"))
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}
