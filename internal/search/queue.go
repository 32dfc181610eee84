package search

import (
	"sync"

	"grepgrip/internal/domain"
)

// Message is a tagged message travelling from the worker to the
// consumer. The worker is the sole producer, the poller the sole
// consumer; delivery order is exactly emission order.
type Message interface {
	isMessage()
}

// MatchMsg carries one located occurrence.
type MatchMsg struct {
	Match domain.SearchMatch
}

// SummaryMsg carries the final tally. It is emitted exactly once per
// run, before DoneMsg.
type SummaryMsg struct {
	Summary domain.Summary
}

// DoneMsg signals that the worker has terminated. It is emitted
// unconditionally, including after cancellation and internal errors.
type DoneMsg struct{}

func (MatchMsg) isMessage()   {}
func (SummaryMsg) isMessage() {}
func (DoneMsg) isMessage()    {}

// Queue is an unbounded FIFO handoff between the worker goroutine and
// the polling consumer. Unlike a buffered channel it never blocks the
// producer and never drops a message; a burst of matches simply grows
// the backlog until the next drain.
type Queue struct {
	mu   sync.Mutex
	msgs []Message
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Put appends a message. Safe to call from the worker goroutine.
func (q *Queue) Put(m Message) {
	q.mu.Lock()
	q.msgs = append(q.msgs, m)
	q.mu.Unlock()
}

// Drain removes and returns all pending messages in emission order.
// It never blocks; an empty queue yields nil.
func (q *Queue) Drain() []Message {
	q.mu.Lock()
	msgs := q.msgs
	q.msgs = nil
	q.mu.Unlock()
	return msgs
}

// Len returns the number of pending messages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.msgs)
}
