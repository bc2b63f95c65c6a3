package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/apidocs/internal/apimodel"
	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
)

type stubTheme struct{ opts Options }

func (s *stubTheme) Name() string { return "stub" }

func (s *stubTheme) LoadFromFile(context.Context, string) error { return nil }

func (s *stubTheme) Render(context.Context) ([]apimodel.RenderedPage, error) { return nil, nil }

func stubFactory(opts Options) (Theme, error) { return &stubTheme{opts: opts}, nil }

func TestRegistry_RegisterAndNew(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("Stub", stubFactory))

	assert.True(t, r.Has("stub"))
	assert.True(t, r.Has(" STUB "))
	assert.Equal(t, []string{"stub"}, r.Names())

	th, err := r.New("STUB", Options{Layout: "api"})
	require.NoError(t, err)
	assert.Equal(t, "api", th.(*stubTheme).opts.Layout)
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("stub", stubFactory))
	assert.Error(t, r.Register("stub", stubFactory))
	assert.Error(t, r.Register("", stubFactory))
	assert.Error(t, r.Register("nil", nil))
}

func TestRegistry_UnknownTheme(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("stub", stubFactory))

	_, err := r.New("material", Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, derrors.ErrUnknownTheme))
	assert.Contains(t, err.Error(), "available=stub")
}
