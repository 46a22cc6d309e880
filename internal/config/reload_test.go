// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const drmDoc = "display:\n  mode: DRM\n"

const waylandDoc = `display:
  mode: Wayland
input:
  wayland:
    connectors:
      - name: HDMI-A-1
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestHolder_ReloadSwapsStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "displ_be.cfg")
	writeFile(t, path, drmDoc)

	initial, err := Load(path, quietLogger())
	require.NoError(t, err)

	h := NewHolder(initial, quietLogger())
	updates := make(chan *Store, 1)
	h.RegisterListener(updates)

	writeFile(t, path, waylandDoc)
	require.NoError(t, h.Reload(context.Background()))

	current := h.Get()
	assert.NotSame(t, initial, current)
	assert.Equal(t, DisplayModeWayland, current.DisplayMode())
	assert.Equal(t, 1, current.ConnectorsCount())

	// The previous store is untouched.
	assert.Equal(t, DisplayModeDRM, initial.DisplayMode())
	assert.Equal(t, 0, initial.ConnectorsCount())

	select {
	case got := <-updates:
		assert.Same(t, current, got)
	default:
		t.Fatal("expected listener notification")
	}
}

func TestHolder_ReloadFailureKeepsPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "displ_be.cfg")
	writeFile(t, path, waylandDoc)

	initial, err := Load(path, quietLogger())
	require.NoError(t, err)
	h := NewHolder(initial, quietLogger())

	writeFile(t, path, "display:\n  mode: vesa\n")
	err = h.Reload(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
	assert.Same(t, initial, h.Get())
}

func TestHolder_ReloadKeepsStrictOption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "displ_be.cfg")
	writeFile(t, path, drmDoc)

	initial, err := Load(path, quietLogger(), WithStrict(true))
	require.NoError(t, err)
	h := NewHolder(initial, quietLogger(), WithStrict(true))

	writeFile(t, path, drmDoc+"extra: true\n")
	err = h.Reload(context.Background())
	assert.ErrorIs(t, err, ErrUnknownConfigField)
}

func TestHolder_WatcherReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "displ_be.cfg")
	writeFile(t, path, drmDoc)

	initial, err := Load(path, quietLogger())
	require.NoError(t, err)
	h := NewHolder(initial, quietLogger())

	updates := make(chan *Store, 1)
	h.RegisterListener(updates)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, h.StartWatcher(ctx))
	defer h.Stop()

	writeFile(t, path, waylandDoc)

	select {
	case s := <-updates:
		assert.Equal(t, DisplayModeWayland, s.DisplayMode())
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload within 5s")
	}
	assert.Equal(t, DisplayModeWayland, h.Get().DisplayMode())
}

func TestHolder_StopWithoutReloadLeaksNothing(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "displ_be.cfg")
	writeFile(t, path, drmDoc)

	initial, err := Load(path, quietLogger())
	require.NoError(t, err)
	h := NewHolder(initial, quietLogger())

	require.NoError(t, h.StartWatcher(context.Background()))
	require.Error(t, h.StartWatcher(context.Background()), "second start must fail")
	h.Stop()
	h.Stop()
}

func TestHolder_ContextCancelStopsWatcher(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "displ_be.cfg")
	writeFile(t, path, drmDoc)

	initial, err := Load(path, quietLogger())
	require.NoError(t, err)
	h := NewHolder(initial, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, h.StartWatcher(ctx))
	cancel()
	h.Stop()
}

func TestHolder_InMemoryStoreIsNotWatched(t *testing.T) {
	s, err := Parse([]byte(drmDoc), FormatYAML, quietLogger())
	require.NoError(t, err)

	h := NewHolder(s, quietLogger())
	require.NoError(t, h.StartWatcher(context.Background()))
	h.Stop()
	assert.Same(t, s, h.Get())
}
