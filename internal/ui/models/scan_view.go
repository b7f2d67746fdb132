package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fenilsonani/dupescan/internal/scanner"
	"github.com/fenilsonani/dupescan/internal/ui/styles"
)

// ScanViewModel shows progress while the scan runs
type ScanViewModel struct {
	engine    *scanner.Engine
	minSize   int64
	spinner   spinner.Model
	startTime time.Time
}

// ScanCompleteMsg is sent when the scan finishes
type ScanCompleteMsg struct {
	Result *scanner.ScanResult
}

// NewScanViewModel creates a new scan view model
func NewScanViewModel(engine *scanner.Engine, minSize int64) *ScanViewModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	return &ScanViewModel{
		engine:    engine,
		minSize:   minSize,
		spinner:   s,
		startTime: time.Now(),
	}
}

// Init starts the spinner and kicks off the scan
func (m *ScanViewModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.performScan,
	)
}

// Update handles messages
func (m *ScanViewModel) Update(msg tea.Msg) (*ScanViewModel, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		return m, cmd
	}
	return m, nil
}

// View renders the scan view
func (m *ScanViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Scanning for duplicates"))
	b.WriteString("\n\n")
	b.WriteString(m.spinner.View())
	b.WriteString(" Scanning... ")
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("(%s)", time.Since(m.startTime).Round(time.Second))))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("Press ctrl+c to cancel"))

	return b.String()
}

// performScan runs the scan on the bubbletea command goroutine so the
// event loop keeps rendering the spinner.
func (m *ScanViewModel) performScan() tea.Msg {
	return ScanCompleteMsg{Result: m.engine.ScanDuplicates(m.minSize)}
}
