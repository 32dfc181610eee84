package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"grepgrip/internal/domain"
)

// chromeLines is everything above and below the result list: the two
// inputs, the root line, the status line, blank separators and the
// help footer.
const chromeLines = 8

func (m *Model) resultViewHeight() int {
	h := m.height - chromeLines
	if h < 1 {
		return 1
	}
	return h
}

// View renders the dialog
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderInput("Find:", m.termInput.View(), m.focus == focusTerm))
	if m.matchCase {
		b.WriteString(" " + caseBadgeStyle.Render("[Aa]"))
	}
	b.WriteString("\n")
	b.WriteString(m.renderInput("Filter:", m.filterInput.View(), m.focus == focusFilter))
	b.WriteString("\n")
	b.WriteString(m.renderRootLine())
	b.WriteString("\n\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")
	b.WriteString(m.renderResults())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) renderInput(label, view string, focused bool) string {
	style := labelStyle
	if focused {
		style = focusedLabelStyle
	}
	return fmt.Sprintf("%s %s", style.Render(fmt.Sprintf("%-7s", label)), view)
}

func (m *Model) renderRootLine() string {
	if m.picking {
		return fmt.Sprintf("%s %s",
			focusedLabelStyle.Render(fmt.Sprintf("%-7s", "Folder:")),
			m.pickInput.View())
	}

	label := labelStyle.Render(fmt.Sprintf("%-7s", "Root:"))
	opt, ok := m.snapshot.SelectedOption()
	if !ok {
		return fmt.Sprintf("%s %s", label, errorStyle.Render("no root available"))
	}

	style := rootStyle
	if opt.Kind == domain.RootRemote {
		style = remoteRootStyle
	}
	line := fmt.Sprintf("%s %s", label, style.Render(opt.Label))
	if len(m.snapshot.Options) > 1 {
		line += caseBadgeStyle.Render(fmt.Sprintf("  (%d roots)", len(m.snapshot.Options)))
	}
	return line
}

func (m *Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusIsErr {
		return errorStyle.Render(m.status)
	}
	if m.searching {
		return m.spin.View() + " " + statusStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}

func (m *Model) renderResults() string {
	if len(m.rows) == 0 {
		return ""
	}

	visible := m.resultViewHeight()
	end := m.scroll + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	var b strings.Builder
	for i := m.scroll; i < end; i++ {
		row := m.rows[i]
		line := fmt.Sprintf("%s%s %s",
			fileStyle.Render(row.displayPath),
			lineNoStyle.Render(fmt.Sprintf(":%d:", row.line)),
			snippetStyle.Render(row.snippet))
		if i == m.selected && m.focus == focusResults {
			line = selectedRowStyle.Render(fmt.Sprintf("%s:%d: %s",
				row.displayPath, row.line, row.snippet))
		}
		if m.width > 0 {
			line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
