// Package ui provides the interactive terminal view over scan results.
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fenilsonani/dupescan/internal/cleaner"
	"github.com/fenilsonani/dupescan/internal/scanner"
	"github.com/fenilsonani/dupescan/internal/ui/models"
)

// Run starts the interactive duplicate browser: it scans, shows the groups
// ranked by wasted space, and lets the user inspect and delete members.
func Run(engine *scanner.Engine, deleter *cleaner.Deleter, minSize int64) error {
	m := models.NewAppModel(engine, deleter, minSize)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running interactive mode: %w", err)
	}

	return nil
}
