package search

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grepgrip/internal/domain"
)

func TestQueueDrainReturnsAllInOrder(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 5; i++ {
		q.Put(MatchMsg{Match: domain.SearchMatch{Line: i + 1}})
	}
	q.Put(SummaryMsg{Summary: domain.Summary{Files: 1, Matches: 5}})
	q.Put(DoneMsg{})

	msgs := q.Drain()
	require.Len(t, msgs, 7)
	for i := 0; i < 5; i++ {
		m, ok := msgs[i].(MatchMsg)
		require.True(t, ok)
		assert.Equal(t, i+1, m.Match.Line)
	}
	_, ok := msgs[5].(SummaryMsg)
	assert.True(t, ok)
	_, ok = msgs[6].(DoneMsg)
	assert.True(t, ok)

	assert.Equal(t, 0, q.Len())
}

func TestQueueDrainEmptyNeverBlocks(t *testing.T) {
	q := NewQueue()
	assert.Nil(t, q.Drain())
	assert.Nil(t, q.Drain())
}

func TestQueueSingleProducerSingleConsumer(t *testing.T) {
	q := NewQueue()
	const total = 10000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; i++ {
			q.Put(MatchMsg{Match: domain.SearchMatch{Line: i}})
		}
		q.Put(DoneMsg{})
	}()

	var got []Message
	for {
		msgs := q.Drain()
		got = append(got, msgs...)
		if len(got) > 0 {
			if _, done := got[len(got)-1].(DoneMsg); done {
				break
			}
		}
	}
	wg.Wait()

	require.Len(t, got, total+1)
	for i := 0; i < total; i++ {
		m, ok := got[i].(MatchMsg)
		require.True(t, ok)
		require.Equal(t, i, m.Match.Line)
	}
}
