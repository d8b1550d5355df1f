package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mabhi256/tjs2dis/internal/disasm"
	"github.com/mabhi256/tjs2dis/internal/tjs2/container"
	"github.com/mabhi256/tjs2dis/internal/tjs2/model"
	"github.com/mabhi256/tjs2dis/internal/view"
	"github.com/mabhi256/tjs2dis/utils"
)

const listPaneWidth = 36

func initialModel(f *container.File) *Model {
	summaries := view.ListObjects(f)

	objectList := list.New(nil, list.NewDefaultDelegate(), listPaneWidth, 0)
	objectList.SetShowStatusBar(false)
	objectList.SetFilteringEnabled(true)

	m := &Model{
		file:       f,
		allObjects: summaries,
		typeFilter: typeAll,
		objectList: objectList,
		help:       help.New(),
		keys:       DefaultKeyMap(),
	}
	m.applyTypeFilter()
	m.loadSelected()
	return m
}

// applyTypeFilter rebuilds the list's item set from m.typeFilter,
// preserving list.Model's own title/size/filtering state.
func (m *Model) applyTypeFilter() {
	var items []list.Item
	for _, s := range m.allObjects {
		if m.typeFilter != typeAll && s.Type != m.typeFilter {
			continue
		}
		items = append(items, objectItem{summary: s})
	}

	if m.typeFilter == typeAll {
		m.objectList.Title = "Objects"
	} else {
		m.objectList.Title = fmt.Sprintf("Objects [%s]", m.typeFilter)
	}
	m.objectList.SetItems(items)
}

// loadSelected decodes the instructions of whichever object the list's
// current selection points at.
func (m *Model) loadSelected() {
	m.instructions = nil
	m.codeScroll = 0

	item, ok := m.objectList.SelectedItem().(objectItem)
	if !ok {
		return
	}
	ctx := view.ObjectByIndex(m.file, item.summary.Index)
	if ctx == nil {
		return
	}
	m.instructions = disasm.Disassemble(ctx, 0, -1)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.objectList.SetSize(listPaneWidth, m.height-4)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.CodeUp):
			m.codeScroll -= m.codePageSize()
			if m.codeScroll < 0 {
				m.codeScroll = 0
			}
			return m, nil
		case key.Matches(msg, m.keys.CodeDown):
			m.codeScroll += m.codePageSize()
			if top := len(m.instructions) - 1; m.codeScroll > top {
				m.codeScroll = top
			}
			if m.codeScroll < 0 {
				m.codeScroll = 0
			}
			return m, nil
		case key.Matches(msg, m.keys.FilterNext):
			m.typeFilter = utils.GetNextEnum(m.typeFilter, model.SuperClassGetter)
			m.applyTypeFilter()
			m.loadSelected()
			return m, nil
		case key.Matches(msg, m.keys.FilterPrev):
			m.typeFilter = utils.GetPrevEnum(m.typeFilter, model.SuperClassGetter)
			m.applyTypeFilter()
			m.loadSelected()
			return m, nil
		}
	}

	prevSelected := m.objectList.Index()
	var cmd tea.Cmd
	m.objectList, cmd = m.objectList.Update(msg)
	if m.objectList.Index() != prevSelected {
		m.loadSelected()
	}
	return m, cmd
}

func (m *Model) codePageSize() int {
	size := m.height - 6
	if size < 1 {
		size = 1
	}
	return size
}

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		utils.BoxStyle.Width(listPaneWidth).Render(m.objectList.View()),
		m.renderCodePane(),
	)
	footer := utils.HelpBarStyle.Width(m.width).Render(m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) renderHeader() string {
	title := fmt.Sprintf("tjs2dis — %d object(s)", len(m.objectList.Items()))
	border := strings.Repeat("─", maxInt(m.width, 1))
	return lipgloss.JoinVertical(lipgloss.Left, utils.TitleStyle.Render(title), border)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// StartTUI launches the interactive browser over a loaded bytecode file.
func StartTUI(f *container.File) error {
	m := initialModel(f)

	program := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
