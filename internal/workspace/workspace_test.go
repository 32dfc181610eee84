package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticRemoteCaps(t *testing.T) {
	s := NewStatic("/tmp/work")
	_, ok := s.RemoteCaps()
	assert.False(t, ok)

	s.HasRemote = true
	s.RemoteDir = "/device/flash"
	s.Caps = Capabilities{LocalFS: false, NodeLabel: "board"}

	caps, ok := s.RemoteCaps()
	require.True(t, ok)
	assert.Equal(t, "board", caps.NodeLabel)
	assert.False(t, caps.LocalFS)
}

func TestStaticChangeCoalesces(t *testing.T) {
	s := NewStatic("/tmp/work")
	s.Change()
	s.Change()
	s.Change()

	<-s.Notify()
	select {
	case <-s.Notify():
		t.Fatal("expected pending signals to coalesce into one")
	default:
	}
}

func TestLocalActiveDirTracksExistence(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir)
	defer l.Close()

	assert.Equal(t, dir, l.ActiveLocalDir())
	assert.Equal(t, "", l.ActiveRemoteDir())
	_, ok := l.RemoteCaps()
	assert.False(t, ok)
}

func TestLocalMissingDirDegrades(t *testing.T) {
	l := NewLocal(filepath.Join(t.TempDir(), "gone"))
	defer l.Close()

	assert.Equal(t, "", l.ActiveLocalDir())
}

func TestLocalNotifyOnChange(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir)
	defer l.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0644))

	select {
	case <-l.Notify():
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change notification after creating a file")
	}
}
