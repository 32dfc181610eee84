package domain

// RootKind tells whether a search root lives on the local machine or
// behind a remote backend.
type RootKind string

const (
	RootLocal  RootKind = "local"
	RootRemote RootKind = "remote"
)

// RootOption is a candidate search root offered to the user.
// Options are rebuilt wholesale on every refresh; they are never
// mutated in place.
type RootOption struct {
	Path    string
	Label   string // shown in the UI, may differ from Path (e.g. "node: /remote/dir")
	Kind    RootKind
	LocalFS bool // true when the root's files can be read from the local filesystem
}

// Searchable reports whether a search may be started on this root.
// Remote roots without a locally readable filesystem are valid to
// display but not to search.
func (o RootOption) Searchable() bool {
	return o.Kind == RootLocal || o.LocalFS
}

// SearchMatch is one located occurrence of the search term.
type SearchMatch struct {
	Path string // absolute file path
	Line int    // 1-based line number
	Col  int    // 0-based byte offset of the match start within the line
	Text string // raw line content, untrimmed
}

// Summary is the final tally of a search run.
type Summary struct {
	Files   int // files scanned (decoded successfully)
	Matches int
}

// SessionState is the lifecycle state of a search session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRunning
	StateCancelling
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateCancelling:
		return "Cancelling"
	default:
		return "Unknown"
	}
}

// SearchRequest carries the validated parameters of one search run.
type SearchRequest struct {
	Root          RootOption
	Glob          string
	Term          string
	CaseSensitive bool
}
