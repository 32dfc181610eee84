package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"grepgrip/internal/config"
	"grepgrip/internal/domain"
	"grepgrip/internal/eventbus"
	"grepgrip/internal/history"
	"grepgrip/internal/roots"
	"grepgrip/internal/search"
	"grepgrip/internal/workspace"
)

// Focus zones within the dialog
const (
	focusTerm = iota
	focusFilter
	focusResults
)

// Status messages shown in the status line
const (
	statusSearching       = "Searching…"
	statusCancelled       = "Search cancelled"
	statusNoMatches       = "No matches found"
	statusSelectValidRoot = "Select a valid root folder."
)

// resultRow is one rendered match entry.
type resultRow struct {
	displayPath string
	line        int
	snippet     string
}

// Model is the find-in-files dialog state.
type Model struct {
	bus        eventbus.EventBus
	cfg        *config.Config
	controller *search.Controller
	resolver   *roots.Resolver
	ws         workspace.Context

	termInput   textinput.Model
	filterInput textinput.Model
	pickInput   textinput.Model
	picking     bool
	focus       int
	matchCase   bool

	snapshot   roots.Snapshot
	activeRoot domain.RootOption

	termHistory   *history.History
	filterHistory *history.History
	termPos       int
	filterPos     int
	termDraft     string
	filterDraft   string

	rows        []resultRow
	selected    int
	scroll      int
	status      string
	statusIsErr bool
	searching   bool
	cancelled   bool

	spin   spinner.Model
	keys   keyMap
	help   help.Model
	width  int
	height int
}

// NewModel builds the dialog from persisted config and the workspace
// context.
func NewModel(bus eventbus.EventBus, cfg *config.Config, ws workspace.Context) *Model {
	termInput := textinput.New()
	termInput.Placeholder = "search text"
	termInput.Focus()

	filterInput := textinput.New()
	filterInput.Placeholder = "*"

	pickInput := textinput.New()
	pickInput.Placeholder = "directory path"

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := &Model{
		bus:           bus,
		cfg:           cfg,
		controller:    search.NewController(bus),
		resolver:      roots.NewResolver(ws),
		ws:            ws,
		termInput:     termInput,
		filterInput:   filterInput,
		pickInput:     pickInput,
		matchCase:     cfg.MatchCase,
		termHistory:   history.NewFrom(history.DefaultCapacity, cfg.GetList(config.KeyRecentTerms)),
		filterHistory: history.NewFrom(history.DefaultCapacity, cfg.GetList(config.KeyRecentFilters)),
		termPos:       -1,
		filterPos:     -1,
		spin:          spin,
		keys:          defaultKeyMap(),
		help:          help.New(),
	}

	// Seed the fields from the most recent history entries.
	m.termInput.SetValue(m.termHistory.Latest())
	m.filterInput.SetValue(m.filterHistory.Latest())

	// First resolve, restoring the persisted root selection when it is
	// still available.
	m.snapshot = roots.Reconcile(
		roots.Snapshot{Selected: cfg.LastRoot},
		m.resolver.Resolve(),
	)

	return m
}

// Controller exposes the search session, mainly for open-match lookups
// and tests.
func (m *Model) Controller() *search.Controller {
	return m.controller
}

// PersistInto writes the dialog's durable state back into the config.
func (m *Model) PersistInto(cfg *config.Config) {
	cfg.SetList(config.KeyRecentTerms, m.termHistory.Items())
	cfg.SetList(config.KeyRecentFilters, m.filterHistory.Items())
	cfg.LastRoot = m.snapshot.Selected
	cfg.MatchCase = m.matchCase
}

// Init schedules the root refresh loop and the workspace listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(rootTick(), m.listenWorkspace(), textinput.Blink)
}

func (m *Model) listenWorkspace() tea.Cmd {
	ch := m.ws.Notify()
	return func() tea.Msg {
		<-ch
		return workspaceChangedMsg{}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		inputWidth := msg.Width - 12
		if inputWidth > 10 {
			m.termInput.Width = inputWidth
			m.filterInput.Width = inputWidth
			m.pickInput.Width = inputWidth
		}
		return m, nil

	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case pollTickMsg:
		return m.handlePoll()

	case rootTickMsg:
		m.refreshRoots()
		return m, rootTick()

	case workspaceChangedMsg:
		m.refreshRoots()
		return m, m.listenWorkspace()

	case pagerDoneMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handlePoll drains the result queue, forwarding each message to the
// visible state, and keeps polling while the session is active.
func (m *Model) handlePoll() (tea.Model, tea.Cmd) {
	for _, msg := range m.controller.Poll() {
		switch msg := msg.(type) {
		case search.MatchMsg:
			m.appendRow(msg.Match)
		case search.SummaryMsg:
			// A summary arriving after an explicit cancel must not
			// overwrite the cancelled status.
			if !m.cancelled {
				m.setStatus(summaryStatus(msg.Summary))
			}
		case search.DoneMsg:
			m.finishSearch()
		}
	}

	if m.controller.Active() {
		return m, pollTick()
	}
	return m, nil
}

func (m *Model) appendRow(match domain.SearchMatch) {
	display := match.Path
	if m.activeRoot.Path != "" {
		if rel, err := filepath.Rel(m.activeRoot.Path, match.Path); err == nil {
			display = rel
		}
	}
	m.rows = append(m.rows, resultRow{
		displayPath: display,
		line:        match.Line,
		snippet:     snippet(match.Text),
	})
}

func (m *Model) finishSearch() {
	m.searching = false
	if m.cancelled {
		m.setStatus(statusCancelled)
	}
}

// handleKey routes key presses by mode and focus.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.picking {
		return m.handlePickKey(msg)
	}

	if m.searching {
		// Inputs are disabled while a search runs; only stopping is
		// allowed.
		switch {
		case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Start):
			m.cancelSearch()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextField):
		m.cycleFocus()
		return m, nil

	case key.Matches(msg, m.keys.CycleRoot):
		m.snapshot = m.snapshot.SelectNext()
		return m, nil

	case key.Matches(msg, m.keys.ToggleCase):
		m.matchCase = !m.matchCase
		return m, nil

	case key.Matches(msg, m.keys.PickDir):
		m.picking = true
		m.pickInput.SetValue("")
		m.pickInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Start):
		if m.focus == focusResults {
			return m, m.openSelected()
		}
		return m, m.startSearch()

	case key.Matches(msg, m.keys.Up):
		m.moveUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveDown()
		return m, nil
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) handlePickKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		path := strings.TrimSpace(m.pickInput.Value())
		m.picking = false
		if path != "" {
			picked := m.resolver.Pick(path)
			m.snapshot = roots.Reconcile(
				roots.Snapshot{Options: m.snapshot.Options, Selected: picked.Label},
				m.resolver.Resolve(),
			)
		}
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.pickInput, cmd = m.pickInput.Update(msg)
	return m, cmd
}

func (m *Model) updateFocusedInput(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusTerm:
		m.termInput, cmd = m.termInput.Update(msg)
		m.termPos = -1
	case focusFilter:
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.filterPos = -1
	}
	return cmd
}

func (m *Model) cycleFocus() {
	m.focus++
	if m.focus == focusResults && len(m.rows) == 0 {
		m.focus = focusTerm
	} else if m.focus > focusResults {
		m.focus = focusTerm
	}

	m.termInput.Blur()
	m.filterInput.Blur()
	switch m.focus {
	case focusTerm:
		m.termInput.Focus()
	case focusFilter:
		m.filterInput.Focus()
	}
}

func (m *Model) moveUp() {
	switch m.focus {
	case focusTerm:
		m.recallTerm(1)
	case focusFilter:
		m.recallFilter(1)
	case focusResults:
		if m.selected > 0 {
			m.selected--
			m.clampScroll()
		}
	}
}

func (m *Model) moveDown() {
	switch m.focus {
	case focusTerm:
		m.recallTerm(-1)
	case focusFilter:
		m.recallFilter(-1)
	case focusResults:
		if m.selected < len(m.rows)-1 {
			m.selected++
			m.clampScroll()
		}
	}
}

// recallTerm steps through recent search terms; direction +1 moves to
// older entries, -1 back toward the in-progress draft.
func (m *Model) recallTerm(direction int) {
	next := m.termPos + direction
	if next < -1 || next >= m.termHistory.Len() {
		return
	}
	if m.termPos == -1 {
		m.termDraft = m.termInput.Value()
	}
	m.termPos = next
	if next == -1 {
		m.termInput.SetValue(m.termDraft)
	} else {
		m.termInput.SetValue(m.termHistory.At(next))
	}
	m.termInput.CursorEnd()
}

func (m *Model) recallFilter(direction int) {
	next := m.filterPos + direction
	if next < -1 || next >= m.filterHistory.Len() {
		return
	}
	if m.filterPos == -1 {
		m.filterDraft = m.filterInput.Value()
	}
	m.filterPos = next
	if next == -1 {
		m.filterInput.SetValue(m.filterDraft)
	} else {
		m.filterInput.SetValue(m.filterHistory.At(next))
	}
	m.filterInput.CursorEnd()
}

// startSearch validates the form and launches the worker.
func (m *Model) startSearch() tea.Cmd {
	root, ok := m.snapshot.SelectedOption()
	if !ok {
		m.setError(statusSelectValidRoot)
		return nil
	}

	req := domain.SearchRequest{
		Root:          root,
		Glob:          m.filterInput.Value(),
		Term:          m.termInput.Value(),
		CaseSensitive: m.matchCase,
	}

	if err := m.controller.Start(req); err != nil {
		m.setError(startErrorStatus(err))
		return nil
	}

	m.termHistory.Add(req.Term)
	m.filterHistory.Add(req.Glob)
	m.termPos, m.filterPos = -1, -1

	m.rows = nil
	m.selected = 0
	m.scroll = 0
	m.activeRoot = root
	m.searching = true
	m.cancelled = false
	m.setStatus(statusSearching)

	log.Printf("search started: term=%q glob=%q root=%s", req.Term, req.Glob, root.Path)
	return tea.Batch(pollTick(), m.spin.Tick)
}

func (m *Model) cancelSearch() {
	if !m.controller.Cancel() {
		return
	}
	m.cancelled = true
	m.searching = false
	m.setStatus(statusCancelled)
	log.Printf("search cancelled by user")
}

// openSelected views the selected match in the pager.
func (m *Model) openSelected() tea.Cmd {
	match, ok := m.controller.MatchAt(m.selected)
	if !ok {
		return nil
	}
	return openMatch(match)
}

// refreshRoots rebuilds the option set and reconciles the selection.
func (m *Model) refreshRoots() {
	m.snapshot = roots.Reconcile(m.snapshot, m.resolver.Resolve())
}

func (m *Model) clampScroll() {
	visible := m.resultViewHeight()
	if visible <= 0 {
		return
	}
	if m.selected < m.scroll {
		m.scroll = m.selected
	}
	if m.selected >= m.scroll+visible {
		m.scroll = m.selected - visible + 1
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusIsErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusIsErr = true
}

// summaryStatus renders the final tally the way the status line shows
// it.
func summaryStatus(s domain.Summary) string {
	if s.Matches == 0 {
		return statusNoMatches
	}
	return fmt.Sprintf("Found %d matches in %d files", s.Matches, s.Files)
}

// startErrorStatus maps a validation error to its inline message.
func startErrorStatus(err error) string {
	switch err {
	case search.ErrEmptyTerm:
		return "Enter search text"
	case search.ErrRootMissing:
		return "The selected root folder does not exist."
	case search.ErrRootNotSearchable:
		return "Searching remote files is not supported for this backend."
	case search.ErrBadGlob:
		return "The filename filter is not a valid pattern."
	case search.ErrAlreadyRunning:
		return "A search is already running."
	default:
		return err.Error()
	}
}

// snippetLimit bounds how much of a matched line the result list shows.
const snippetLimit = 200

// snippet derives the display form of a matched line: trimmed and
// truncated with an ellipsis.
func snippet(line string) string {
	s := strings.TrimSpace(line)
	runes := []rune(s)
	if len(runes) <= snippetLimit {
		return s
	}
	return string(runes[:snippetLimit-3]) + "…"
}
