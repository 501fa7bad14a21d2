package window

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWindow struct {
	title string
}

func (s *stubWindow) SetTitle(title string) error { s.title = title; return nil }
func (s *stubWindow) Navigate(u *url.URL) error   { return nil }

func TestRegistryGetMissing(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Get(Main)

	assert.False(t, ok)
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	w := &stubWindow{}

	r.Register(Main, w)

	got, ok := r.Get(Main)
	require.True(t, ok)
	assert.Same(t, w, got)
}

func TestRegistryRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	first := &stubWindow{}
	second := &stubWindow{}

	r.Register(Main, first)
	r.Register(Main, second)

	got, ok := r.Get(Main)
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestRuntimeWindowWithoutContext(t *testing.T) {
	w := FromContext(nil)

	assert.Error(t, w.SetTitle(""))

	u, err := url.Parse("https://example.com")
	require.NoError(t, err)
	assert.Error(t, w.Navigate(u))
}
