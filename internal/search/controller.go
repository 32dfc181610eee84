package search

import (
	"context"
	"errors"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"grepgrip/internal/domain"
	"grepgrip/internal/eventbus"
)

// Validation errors reported synchronously by Start. The search never
// begins when one of these is returned.
var (
	ErrAlreadyRunning    = errors.New("a search is already running")
	ErrEmptyTerm         = errors.New("enter search text")
	ErrRootMissing       = errors.New("the selected root folder does not exist")
	ErrRootNotSearchable = errors.New("searching remote files is not supported for this backend")
	ErrBadGlob           = errors.New("invalid filename filter")
)

// cancelGrace is how long Cancel waits for the worker to observe
// cancellation before forcing finalization.
const cancelGrace = 250 * time.Millisecond

// Controller owns the search session lifecycle: at most one worker is
// active at any time, state moves Idle -> Running -> (Cancelling) ->
// Idle, and all results flow through the per-run queue.
type Controller struct {
	bus eventbus.EventBus

	mu      sync.Mutex
	state   domain.SessionState
	queue   *Queue
	cancel  context.CancelFunc
	done    chan struct{}
	matches []domain.SearchMatch
}

// NewController creates an idle controller. The bus is optional; when
// present, lifecycle events are published on it.
func NewController(bus eventbus.EventBus) *Controller {
	return &Controller{bus: bus}
}

// Start validates req and launches a worker for it. It rejects the
// request when a search is already running; callers should cancel
// first. On success the previous run's matches are cleared.
func (c *Controller) Start(req domain.SearchRequest) error {
	req.Term = strings.TrimSpace(req.Term)
	if req.Term == "" {
		return ErrEmptyTerm
	}

	req.Glob = strings.TrimSpace(req.Glob)
	if req.Glob == "" {
		req.Glob = "*"
	}
	if _, err := path.Match(req.Glob, "probe"); err != nil {
		return ErrBadGlob
	}

	if !req.Root.Searchable() {
		return ErrRootNotSearchable
	}
	if _, err := os.Stat(req.Root.Path); err != nil {
		return ErrRootMissing
	}

	c.mu.Lock()
	if c.state != domain.StateIdle {
		c.mu.Unlock()
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(context.Background())
	queue := NewQueue()
	done := make(chan struct{})

	c.state = domain.StateRunning
	c.queue = queue
	c.cancel = cancel
	c.done = done
	c.matches = c.matches[:0]
	c.mu.Unlock()

	go func() {
		defer close(done)
		NewWorker(queue).Run(ctx, req)
	}()

	if c.bus != nil {
		c.bus.Publish(domain.SearchStartedEvent{Request: req})
	}
	return nil
}

// Cancel requests cooperative cancellation. It is a no-op unless a
// search is running. It waits briefly for the worker to stop, then
// forces finalization so the session cannot stay half-cancelled.
// Returns true when a cancellation was issued.
func (c *Controller) Cancel() bool {
	c.mu.Lock()
	if c.state != domain.StateRunning {
		c.mu.Unlock()
		return false
	}
	c.state = domain.StateCancelling
	cancel := c.cancel
	done := c.done
	c.mu.Unlock()

	cancel()
	if c.bus != nil {
		c.bus.Publish(domain.SearchCancelledEvent{})
	}

	select {
	case <-done:
	case <-time.After(cancelGrace):
	}

	c.finalize(true)
	return true
}

// Toggle cancels when running, otherwise starts.
func (c *Controller) Toggle(req domain.SearchRequest) error {
	if c.Cancel() {
		return nil
	}
	return c.Start(req)
}

// Poll drains all pending messages from the current run, in emission
// order, recording matches for later lookup and finalizing on done.
// It never blocks. After finalization Poll returns nothing until the
// next Start, so a summary straggling in after a forced cancel cannot
// resurface.
func (c *Controller) Poll() []Message {
	c.mu.Lock()
	queue := c.queue
	c.mu.Unlock()
	if queue == nil {
		return nil
	}

	msgs := queue.Drain()
	for _, m := range msgs {
		switch msg := m.(type) {
		case MatchMsg:
			c.mu.Lock()
			c.matches = append(c.matches, msg.Match)
			c.mu.Unlock()
		case DoneMsg:
			c.finalize(false)
		}
	}
	return msgs
}

// finalize transitions to Idle and detaches the queue. Idempotent;
// reached from the done message and from Cancel's grace timeout.
func (c *Controller) finalize(cancelled bool) {
	c.mu.Lock()
	if c.state == domain.StateIdle && c.queue == nil {
		c.mu.Unlock()
		return
	}
	c.state = domain.StateIdle
	c.queue = nil
	c.cancel = nil
	c.done = nil
	c.mu.Unlock()

	if c.bus != nil {
		c.bus.Publish(domain.SearchFinishedEvent{Cancelled: cancelled})
	}
}

// State returns the current session state.
func (c *Controller) State() domain.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Active reports whether a run still needs polling.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state != domain.StateIdle || c.queue != nil
}

// MatchAt answers "open match at index N" lookups from the stored
// match list of the current (or most recent) run.
func (c *Controller) MatchAt(i int) (domain.SearchMatch, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.matches) {
		return domain.SearchMatch{}, false
	}
	return c.matches[i], true
}

// MatchCount returns the number of matches recorded so far.
func (c *Controller) MatchCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.matches)
}
