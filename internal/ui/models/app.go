package models

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fenilsonani/dupescan/internal/cleaner"
	"github.com/fenilsonani/dupescan/internal/scanner"
)

// ViewState represents the current view in the app
type ViewState int

const (
	ViewScanning ViewState = iota
	ViewGroups
	ViewGroupDetail
	ViewConfirmDelete
	ViewSummary
)

// AppModel is the root model for the interactive TUI
type AppModel struct {
	state ViewState

	engine  *scanner.Engine
	deleter *cleaner.Deleter
	minSize int64
	result  *scanner.ScanResult

	scanView    *ScanViewModel
	groupsView  *GroupsViewModel
	detailView  *DetailViewModel
	confirmView *ConfirmViewModel
	summaryView *SummaryViewModel

	width  int
	height int
}

// NewAppModel creates a new app model
func NewAppModel(engine *scanner.Engine, deleter *cleaner.Deleter, minSize int64) *AppModel {
	return &AppModel{
		state:   ViewScanning,
		engine:  engine,
		deleter: deleter,
		minSize: minSize,
	}
}

// Init starts the scan immediately
func (m *AppModel) Init() tea.Cmd {
	m.scanView = NewScanViewModel(m.engine, m.minSize)
	return m.scanView.Init()
}

// Update handles messages
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.state == ViewGroups || m.state == ViewSummary {
				return m, tea.Quit
			}
		case "esc":
			switch m.state {
			case ViewGroupDetail:
				m.state = ViewGroups
				return m, nil
			case ViewConfirmDelete:
				m.state = ViewGroupDetail
				return m, nil
			case ViewSummary:
				m.state = ViewGroups
				return m, nil
			}
		case "s":
			if m.state == ViewGroups {
				m.summaryView = NewSummaryViewModel(m.result)
				m.state = ViewSummary
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.groupsView != nil {
			m.groupsView.Resize(msg.Width, msg.Height)
		}

	case ScanCompleteMsg:
		m.result = msg.Result
		m.groupsView = NewGroupsViewModel(m.result, m.width, m.height)
		m.state = ViewGroups
		return m, nil

	case GroupSelectedMsg:
		m.detailView = NewDetailViewModel(&m.result.Groups[msg.Index], msg.Index)
		m.state = ViewGroupDetail
		return m, nil

	case DeleteRequestedMsg:
		m.confirmView = NewConfirmViewModel(m.deleter, msg.GroupIndex, msg.FileIndex, msg.Path)
		m.state = ViewConfirmDelete
		return m, nil

	case DeleteDoneMsg:
		if msg.Err == nil {
			m.removeFile(msg.GroupIndex, msg.FileIndex)
			m.groupsView = NewGroupsViewModel(m.result, m.width, m.height)
			if m.detailView != nil && msg.GroupIndex < len(m.result.Groups) {
				m.detailView = NewDetailViewModel(&m.result.Groups[msg.GroupIndex], msg.GroupIndex)
			}
		}
		return m.delegateUpdate(msg)
	}

	return m.delegateUpdate(msg)
}

// removeFile drops a deleted member from its group and updates the result
// aggregates. A group shrinking below two members stops being a duplicate
// group and is removed entirely.
func (m *AppModel) removeFile(groupIndex, fileIndex int) {
	if groupIndex >= len(m.result.Groups) {
		return
	}
	group := &m.result.Groups[groupIndex]
	if fileIndex >= len(group.Files) {
		return
	}

	group.Files = append(group.Files[:fileIndex], group.Files[fileIndex+1:]...)
	group.Count = len(group.Files)
	group.WastedBytes = group.FileSize * int64(group.Count-1)
	m.result.TotalDuplicates--
	m.result.TotalWasted -= group.FileSize

	if group.Count < 2 {
		m.result.Groups = append(m.result.Groups[:groupIndex], m.result.Groups[groupIndex+1:]...)
		m.state = ViewGroups
	}
}

// delegateUpdate delegates the update to the current view
func (m *AppModel) delegateUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state {
	case ViewScanning:
		m.scanView, cmd = m.scanView.Update(msg)
	case ViewGroups:
		m.groupsView, cmd = m.groupsView.Update(msg)
	case ViewGroupDetail:
		m.detailView, cmd = m.detailView.Update(msg)
	case ViewConfirmDelete:
		m.confirmView, cmd = m.confirmView.Update(msg)
	case ViewSummary:
		m.summaryView, cmd = m.summaryView.Update(msg)
	}

	return m, cmd
}

// View renders the current view
func (m *AppModel) View() string {
	switch m.state {
	case ViewScanning:
		return m.scanView.View()
	case ViewGroups:
		return m.groupsView.View()
	case ViewGroupDetail:
		return m.detailView.View()
	case ViewConfirmDelete:
		return m.confirmView.View()
	case ViewSummary:
		return m.summaryView.View()
	default:
		return ""
	}
}
