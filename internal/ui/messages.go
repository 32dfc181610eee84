package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pollTickMsg drives the result queue drain while a search is active
type pollTickMsg time.Time

// rootTickMsg drives the periodic root option refresh
type rootTickMsg time.Time

// workspaceChangedMsg arrives when the workspace reported a change
type workspaceChangedMsg struct{}

// pagerDoneMsg is sent after the match pager exits
type pagerDoneMsg struct {
	err error
}

// pollInterval is how often the poller drains the result queue.
const pollInterval = 100 * time.Millisecond

// rootRefreshInterval is how often root options are rebuilt.
const rootRefreshInterval = 2 * time.Second

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}

func rootTick() tea.Cmd {
	return tea.Tick(rootRefreshInterval, func(t time.Time) tea.Msg {
		return rootTickMsg(t)
	})
}
