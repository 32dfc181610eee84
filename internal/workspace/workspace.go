// Package workspace abstracts the editor/workspace context that
// supplies search roots. The search core only ever sees the Context
// interface; the concrete implementations decide what "active
// directory" means.
package workspace

// Capabilities describes what a remote backend can do.
type Capabilities struct {
	LocalFS   bool   // remote files are readable through the local filesystem
	NodeLabel string // short human-facing backend name, e.g. a device or host name
}

// Context supplies the directories a search can be rooted at.
type Context interface {
	// ActiveLocalDir returns the active local directory, or "" when
	// there is none.
	ActiveLocalDir() string

	// ActiveRemoteDir returns the active remote/alternate directory,
	// or "" when no backend is attached.
	ActiveRemoteDir() string

	// RemoteCaps returns the remote backend's capabilities. The bool
	// is false when no backend is attached.
	RemoteCaps() (Capabilities, bool)

	// Notify delivers a signal whenever the workspace changed in a way
	// that may affect the available roots (backend restarted, remote
	// listing changed). The channel is never closed by Context users.
	Notify() <-chan struct{}
}

// Static is a fixed-value Context. It backs tests and embedded setups
// where the roots are known up front.
type Static struct {
	LocalDir  string
	RemoteDir string
	Caps      Capabilities
	HasRemote bool

	changes chan struct{}
}

// NewStatic creates a Static context.
func NewStatic(localDir string) *Static {
	return &Static{
		LocalDir: localDir,
		changes:  make(chan struct{}, 1),
	}
}

func (s *Static) ActiveLocalDir() string  { return s.LocalDir }
func (s *Static) ActiveRemoteDir() string { return s.RemoteDir }

func (s *Static) RemoteCaps() (Capabilities, bool) {
	if !s.HasRemote {
		return Capabilities{}, false
	}
	return s.Caps, true
}

func (s *Static) Notify() <-chan struct{} { return s.changes }

// Change signals a workspace change to any subscriber. Non-blocking;
// coalesces with a pending signal.
func (s *Static) Change() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}
