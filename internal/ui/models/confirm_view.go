package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fenilsonani/dupescan/internal/cleaner"
	"github.com/fenilsonani/dupescan/internal/ui/styles"
)

// ConfirmViewModel asks for confirmation before one file is deleted
type ConfirmViewModel struct {
	deleter    *cleaner.Deleter
	groupIndex int
	fileIndex  int
	path       string

	done    bool
	message string
	err     error
}

// DeleteDoneMsg is sent after a delete attempt
type DeleteDoneMsg struct {
	GroupIndex int
	FileIndex  int
	Path       string
	Message    string
	Err        error
}

// NewConfirmViewModel creates a delete confirmation view
func NewConfirmViewModel(deleter *cleaner.Deleter, groupIndex, fileIndex int, path string) *ConfirmViewModel {
	return &ConfirmViewModel{
		deleter:    deleter,
		groupIndex: groupIndex,
		fileIndex:  fileIndex,
		path:       path,
	}
}

// Update handles messages
func (m *ConfirmViewModel) Update(msg tea.Msg) (*ConfirmViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			if !m.done {
				return m, m.performDelete
			}
		case "n", "N":
			if !m.done {
				return m, backToDetail
			}
		case "enter":
			if m.done {
				return m, backToDetail
			}
		}

	case DeleteDoneMsg:
		m.done = true
		m.message = msg.Message
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// View renders the confirmation prompt or the delete outcome
func (m *ConfirmViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Delete File"))
	b.WriteString("\n\n")

	if !m.done {
		b.WriteString("Permanently delete this file? There is no undo.\n\n")
		b.WriteString(styles.FilePathStyle.Render(m.path))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("y: delete · n/esc: cancel"))
		return b.String()
	}

	if m.err != nil {
		b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("✗ %v", m.err)))
	} else {
		b.WriteString(styles.SuccessStyle.Render("✓ " + m.message))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("enter/esc: back"))

	return b.String()
}

// performDelete runs the delete off the event loop
func (m *ConfirmViewModel) performDelete() tea.Msg {
	message, err := m.deleter.Delete(m.path)
	return DeleteDoneMsg{
		GroupIndex: m.groupIndex,
		FileIndex:  m.fileIndex,
		Path:       m.path,
		Message:    message,
		Err:        err,
	}
}

func backToDetail() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}
