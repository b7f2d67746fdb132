package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/fenilsonani/dupescan/internal/scanner"
	"github.com/fenilsonani/dupescan/internal/ui/styles"
)

// DetailViewModel lists the members of one duplicate group
type DetailViewModel struct {
	group      *scanner.DuplicateGroup
	groupIndex int
	cursor     int
}

// DeleteRequestedMsg is sent when the user asks to delete a member
type DeleteRequestedMsg struct {
	GroupIndex int
	FileIndex  int
	Path       string
}

// NewDetailViewModel creates a detail view for one group
func NewDetailViewModel(group *scanner.DuplicateGroup, groupIndex int) *DetailViewModel {
	return &DetailViewModel{
		group:      group,
		groupIndex: groupIndex,
	}
}

// Update handles messages
func (m *DetailViewModel) Update(msg tea.Msg) (*DetailViewModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.group.Files)-1 {
			m.cursor++
		}
	case "d":
		if m.cursor < len(m.group.Files) {
			file := m.group.Files[m.cursor]
			groupIndex, fileIndex := m.groupIndex, m.cursor
			return m, func() tea.Msg {
				return DeleteRequestedMsg{
					GroupIndex: groupIndex,
					FileIndex:  fileIndex,
					Path:       file.Path,
				}
			}
		}
	}

	return m, nil
}

// View renders the group members
func (m *DetailViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Duplicate Group"))
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf(
		"%d files x %s · fingerprint %s · wasting %s",
		m.group.Count,
		humanize.Bytes(uint64(m.group.FileSize)),
		m.group.Fingerprint,
		humanize.Bytes(uint64(m.group.WastedBytes)),
	)))
	b.WriteString("\n\n")

	for i, file := range m.group.Files {
		line := fmt.Sprintf("%s  %s · %s", file.Path, file.Modified, extensionLabel(file.Extension))
		if i == m.cursor {
			b.WriteString(styles.SelectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("d: delete selected · esc: back · ctrl+c: quit"))

	return b.String()
}

func extensionLabel(ext string) string {
	if ext == "" {
		return "no extension"
	}
	return "." + ext
}
