package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted    EventType = "SearchStarted"
	EventSearchFinished   EventType = "SearchFinished"
	EventSearchCancelled  EventType = "SearchCancelled"
	EventRootsChanged     EventType = "RootsChanged"
	EventWorkspaceChanged EventType = "WorkspaceChanged"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a search run begins
type SearchStartedEvent struct {
	Request SearchRequest
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchFinishedEvent is emitted when a search run completes, whether
// exhausted or cancelled
type SearchFinishedEvent struct {
	Summary   Summary
	Cancelled bool
}

func (e SearchFinishedEvent) Type() EventType { return EventSearchFinished }

// SearchCancelledEvent is emitted when cancellation is requested
type SearchCancelledEvent struct{}

func (e SearchCancelledEvent) Type() EventType { return EventSearchCancelled }

// RootsChangedEvent is emitted when the resolver rebuilt the root options
type RootsChangedEvent struct {
	Options []RootOption
}

func (e RootsChangedEvent) Type() EventType { return EventRootsChanged }

// WorkspaceChangedEvent is emitted when the workspace backend reports a
// change that may affect the available roots
type WorkspaceChangedEvent struct{}

func (e WorkspaceChangedEvent) Type() EventType { return EventWorkspaceChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
