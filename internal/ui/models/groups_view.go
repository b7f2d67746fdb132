package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/fenilsonani/dupescan/internal/scanner"
	"github.com/fenilsonani/dupescan/internal/ui/styles"
)

// GroupsViewModel lists duplicate groups ranked by wasted space
type GroupsViewModel struct {
	result *scanner.ScanResult
	table  table.Model
}

// GroupSelectedMsg is sent when the user opens a group
type GroupSelectedMsg struct {
	Index int
}

// NewGroupsViewModel creates the group table
func NewGroupsViewModel(result *scanner.ScanResult, width, height int) *GroupsViewModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Files", Width: 6},
		{Title: "Size", Width: 12},
		{Title: "Wasted", Width: 12},
		{Title: "Example", Width: 50},
	}

	rows := make([]table.Row, 0, len(result.Groups))
	for i, group := range result.Groups {
		example := ""
		if len(group.Files) > 0 {
			example = group.Files[0].Path
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", group.Count),
			humanize.Bytes(uint64(group.FileSize)),
			humanize.Bytes(uint64(group.WastedBytes)),
			example,
		})
	}

	tableHeight := height - 8
	if tableHeight < 5 {
		tableHeight = 10
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(styles.Primary)
	s.Selected = s.Selected.Foreground(styles.Text).Background(styles.Primary)
	t.SetStyles(s)

	return &GroupsViewModel{
		result: result,
		table:  t,
	}
}

// Resize adjusts the table to a new window size
func (m *GroupsViewModel) Resize(width, height int) {
	if height > 8 {
		m.table.SetHeight(height - 8)
	}
}

// Update handles messages
func (m *GroupsViewModel) Update(msg tea.Msg) (*GroupsViewModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if idx := m.table.Cursor(); idx >= 0 && idx < len(m.result.Groups) {
			return m, func() tea.Msg { return GroupSelectedMsg{Index: idx} }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the group table
func (m *GroupsViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Duplicate Groups"))
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf(
		"%d groups · %d duplicates · %s wasted · %d files scanned",
		len(m.result.Groups),
		m.result.TotalDuplicates,
		humanize.Bytes(uint64(m.result.TotalWasted)),
		m.result.FilesScanned,
	)))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("enter: open group · s: summary · q: quit"))

	return b.String()
}
