package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Kaper156/pygedcom/pkg/gedcom"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	detailBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// =============================================================================
// BrowseModel - Interactive individual browser
// =============================================================================

// BrowseModel is the bubbletea model for browsing individuals.
type BrowseModel struct {
	parser *gedcom.Parser
	Cursor int
	Height int
	Offset int
}

// NewBrowseModel creates a browse model over the parser's individuals.
func NewBrowseModel(p *gedcom.Parser) BrowseModel {
	return BrowseModel{
		parser: p,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.parser.Individuals)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Individuals"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.parser.Individuals) {
		end = len(m.parser.Individuals)
	}

	var list strings.Builder
	for i := m.Offset; i < end; i++ {
		ind := m.parser.Individuals[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		name := strings.TrimSpace(ind.String())
		if name == "" {
			name = ind.XRef
		}
		line := fmt.Sprintf("%s%-30s %s", cursor, name, listDimStyle.Render(ind.XRef))

		if i == m.Cursor {
			list.WriteString(listSelectedStyle.Render(line))
		} else {
			list.WriteString(listNormalStyle.Render(line))
		}
		list.WriteString("\n")
	}

	detail := m.detailView(m.parser.Individuals[m.Cursor])
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), detailBorderStyle.Render(detail)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.parser.Individuals))))

	return b.String()
}

// detailView renders the selected individual's record.
func (m BrowseModel) detailView(ind *gedcom.Individual) string {
	var b strings.Builder

	name := strings.TrimSpace(ind.String())
	if name == "" {
		name = ind.XRef
	}
	b.WriteString(StyleTitle.Render(name))
	b.WriteString("\n\n")

	writeDetail := func(label, value string) {
		if value == "" {
			value = "—"
		}
		b.WriteString(listDimStyle.Render(fmt.Sprintf("%-10s", label)))
		b.WriteString(StyleValue.Render(value))
		b.WriteString("\n")
	}

	writeDetail("Sex", ind.Sex)
	if ind.Birth != nil {
		writeDetail("Birth", eventLine(ind.Birth))
	}
	if ind.Death != nil {
		writeDetail("Death", eventLine(ind.Death))
	}
	writeDetail("Parents", strings.Join(m.names(m.parser.Parents(ind)), ", "))
	writeDetail("Children", strings.Join(m.names(m.parser.Children(ind)), ", "))

	return b.String()
}

// names maps individuals to display names, falling back to xrefs.
func (m BrowseModel) names(inds []*gedcom.Individual) []string {
	out := make([]string, 0, len(inds))
	for _, ind := range inds {
		name := strings.TrimSpace(ind.String())
		if name == "" {
			name = ind.XRef
		}
		out = append(out, name)
	}
	return out
}

// eventLine formats an event as "date, place" with absent parts dropped.
func eventLine(e *gedcom.Event) string {
	var parts []string
	if e.Date != nil {
		parts = append(parts, e.Date.String())
	}
	if e.Place != "" {
		parts = append(parts, e.Place)
	}
	return strings.Join(parts, ", ")
}
