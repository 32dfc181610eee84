// Package roots enumerates the directories a search can be scoped to
// and keeps the user's selection stable while the option set is
// rebuilt underneath it.
package roots

import (
	"os"

	"grepgrip/internal/domain"
	"grepgrip/internal/workspace"
)

// remoteFallbackLabel prefixes the remote option when the backend
// cannot name itself.
const remoteFallbackLabel = "Remote"

// Resolver builds the current set of root options from the workspace
// context. Options are rebuilt wholesale on every Resolve call.
type Resolver struct {
	ws     workspace.Context
	picked *domain.RootOption // user-chosen directory, kept until superseded
}

// NewResolver creates a resolver over the given workspace context.
func NewResolver(ws workspace.Context) *Resolver {
	return &Resolver{ws: ws}
}

// Pick registers a user-chosen local directory. It stays in the option
// set across refreshes until the next Pick replaces it.
func (r *Resolver) Pick(path string) domain.RootOption {
	opt := domain.RootOption{
		Path:    path,
		Label:   path,
		Kind:    domain.RootLocal,
		LocalFS: true,
	}
	r.picked = &opt
	return opt
}

// Resolve returns the ordered root options: the active local
// directory, the remote directory (when a backend is attached), the
// process working directory as a fallback when neither exists, and
// finally any user-picked directory.
func (r *Resolver) Resolve() []domain.RootOption {
	var options []domain.RootOption

	if dir := r.ws.ActiveLocalDir(); dir != "" {
		options = append(options, domain.RootOption{
			Path:    dir,
			Label:   dir,
			Kind:    domain.RootLocal,
			LocalFS: true,
		})
	}

	if opt, ok := r.remoteOption(); ok {
		options = append(options, opt)
	}

	if len(options) == 0 {
		if cwd, err := os.Getwd(); err == nil {
			options = append(options, domain.RootOption{
				Path:    cwd,
				Label:   cwd,
				Kind:    domain.RootLocal,
				LocalFS: true,
			})
		}
	}

	if r.picked != nil && !containsLabel(options, r.picked.Label) {
		options = append(options, *r.picked)
	}

	return options
}

func (r *Resolver) remoteOption() (domain.RootOption, bool) {
	dir := r.ws.ActiveRemoteDir()
	if dir == "" {
		return domain.RootOption{}, false
	}

	caps, ok := r.ws.RemoteCaps()
	prefix := remoteFallbackLabel
	localFS := false
	if ok {
		localFS = caps.LocalFS
		if caps.NodeLabel != "" {
			prefix = caps.NodeLabel
		}
	}

	kind := domain.RootRemote
	if localFS {
		kind = domain.RootLocal
	}

	return domain.RootOption{
		Path:    dir,
		Label:   prefix + ": " + dir,
		Kind:    kind,
		LocalFS: localFS,
	}, true
}

func containsLabel(options []domain.RootOption, label string) bool {
	for _, o := range options {
		if o.Label == label {
			return true
		}
	}
	return false
}
