package roots

import "grepgrip/internal/domain"

// Snapshot is an immutable view of the option set plus the selected
// label. Refresh logic works on snapshots so it stays testable in
// isolation from any UI state.
type Snapshot struct {
	Options  []domain.RootOption
	Selected string
}

// Reconcile replaces the option set with next while preserving the
// previously selected label when it is still present. When it is not,
// selection falls back to the first available label.
func Reconcile(prev Snapshot, next []domain.RootOption) Snapshot {
	snap := Snapshot{Options: next}

	for _, o := range next {
		if o.Label == prev.Selected {
			snap.Selected = prev.Selected
			return snap
		}
	}

	if len(next) > 0 {
		snap.Selected = next[0].Label
	}
	return snap
}

// Find returns the option carrying the given label.
func (s Snapshot) Find(label string) (domain.RootOption, bool) {
	for _, o := range s.Options {
		if o.Label == label {
			return o, true
		}
	}
	return domain.RootOption{}, false
}

// SelectedOption returns the currently selected option.
func (s Snapshot) SelectedOption() (domain.RootOption, bool) {
	return s.Find(s.Selected)
}

// SelectNext cycles the selection forward through the options.
func (s Snapshot) SelectNext() Snapshot {
	if len(s.Options) == 0 {
		return s
	}
	for i, o := range s.Options {
		if o.Label == s.Selected {
			s.Selected = s.Options[(i+1)%len(s.Options)].Label
			return s
		}
	}
	s.Selected = s.Options[0].Label
	return s
}
