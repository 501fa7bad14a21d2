// Package window tracks named native windows so startup code can address
// them without holding framework handles directly.
package window

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Main is the name of the primary window created by the default options.
const Main = "main"

// Window is the surface of a native window the setup sequence drives.
type Window interface {
	SetTitle(title string) error
	Navigate(u *url.URL) error
}

// Registry maps window names to live handles.
type Registry struct {
	mu      sync.RWMutex
	windows map[string]Window
}

func NewRegistry() *Registry {
	return &Registry{windows: make(map[string]Window)}
}

// Register makes w addressable under name, replacing any previous handle.
func (r *Registry) Register(name string, w Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows[name] = w
}

// Get returns the window registered under name, if any.
func (r *Registry) Get(name string) (Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.windows[name]
	return w, ok
}

// runtimeWindow drives the Wails window through its runtime context.
type runtimeWindow struct {
	ctx context.Context
}

// FromContext wraps the runtime context handed to the startup hook.
func FromContext(ctx context.Context) Window {
	return &runtimeWindow{ctx: ctx}
}

func (w *runtimeWindow) SetTitle(title string) error {
	if w.ctx == nil {
		return errors.New("window runtime not ready")
	}
	runtime.WindowSetTitle(w.ctx, title)
	return nil
}

// Navigate points the embedded webview at u, replacing whatever the window
// is currently showing. Wails has no direct navigation call, so the redirect
// happens inside the page.
func (w *runtimeWindow) Navigate(u *url.URL) error {
	if w.ctx == nil {
		return errors.New("window runtime not ready")
	}
	runtime.WindowExecJS(w.ctx, fmt.Sprintf("window.location.replace(%q);", u.String()))
	return nil
}
