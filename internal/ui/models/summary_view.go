package models

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/fenilsonani/dupescan/internal/scanner"
	"github.com/fenilsonani/dupescan/internal/ui/styles"
)

// SummaryViewModel shows the scan totals
type SummaryViewModel struct {
	result *scanner.ScanResult
}

// NewSummaryViewModel creates a summary view
func NewSummaryViewModel(result *scanner.ScanResult) *SummaryViewModel {
	return &SummaryViewModel{result: result}
}

// Update handles messages
func (m *SummaryViewModel) Update(msg tea.Msg) (*SummaryViewModel, tea.Cmd) {
	return m, nil
}

// View renders the summary
func (m *SummaryViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Scan Summary"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Files scanned:    %d\n", m.result.FilesScanned))
	b.WriteString(fmt.Sprintf("Duplicate groups: %d\n", len(m.result.Groups)))
	b.WriteString(fmt.Sprintf("Duplicate files:  %d\n", m.result.TotalDuplicates))
	b.WriteString(fmt.Sprintf("Wasted space:     %s\n", humanize.Bytes(uint64(m.result.TotalWasted))))
	b.WriteString(fmt.Sprintf("Duration:         %s\n", m.result.Duration.Round(time.Millisecond)))
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("esc: back · q: quit"))

	return b.String()
}
