package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"grepgrip/internal/domain"
)

// openMatch returns a command that suspends the TUI and views the
// matched file in the ov pager, positioned at the match line.
func openMatch(match domain.SearchMatch) tea.Cmd {
	return tea.Exec(&pagerCommand{match: match}, func(err error) tea.Msg {
		return pagerDoneMsg{err: err}
	})
}

// pagerCommand adapts the ov pager to bubbletea's Exec interface so
// the terminal is released and restored around it.
type pagerCommand struct {
	match domain.SearchMatch
}

func (p *pagerCommand) Run() error {
	content, err := os.ReadFile(p.match.Path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", p.match.Path, err)
	}

	root, err := oviewer.NewRoot(strings.NewReader(string(content)))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	jumpTarget := strconv.Itoa(p.match.Line)
	config.General.JumpTarget = &jumpTarget
	root.SetConfig(config)

	return root.Run()
}

func (p *pagerCommand) SetStdin(io.Reader)  {}
func (p *pagerCommand) SetStdout(io.Writer) {}
func (p *pagerCommand) SetStderr(io.Writer) {}
