package file

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_HandleEvent(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	w, err := NewWatcher(store, nil, nil)
	require.NoError(t, err)
	defer w.Close()

	other := filepath.Join(filepath.Dir(store.Path()), "other.toml")
	tests := []struct {
		name string
		path string
		op   fsnotify.Op
		want bool
	}{
		{"write config", store.Path(), fsnotify.Write, true},
		{"create config", store.Path(), fsnotify.Create, true},
		{"rename config", store.Path(), fsnotify.Rename, true},
		{"remove config", store.Path(), fsnotify.Remove, true},
		{"chmod config ignored", store.Path(), fsnotify.Chmod, false},
		{"other file ignored", other, fsnotify.Write, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.handleEvent(fsnotify.Event{Name: tt.path, Op: tt.op}))
		})
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	changes := make(chan Settings, 4)
	w, err := NewWatcher(store, envMap(nil), func(s Settings) { changes <- s })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	writeConfig(t, tmpDir, "[ui]\nlocale = \"en\"\n")

	select {
	case s := <-changes:
		assert.Equal(t, "en", s.Locale)
		assert.Equal(t, "en", store.GetString(KeyLocale))
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after config write")
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	w, err := NewWatcher(store, nil, nil)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		w.Run(context.Background())
		close(done)
	}()
	w.Close()
	w.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Close")
	}
}
