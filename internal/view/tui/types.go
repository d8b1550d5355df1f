package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"

	"github.com/mabhi256/tjs2dis/internal/disasm"
	"github.com/mabhi256/tjs2dis/internal/tjs2/container"
	"github.com/mabhi256/tjs2dis/internal/tjs2/model"
	"github.com/mabhi256/tjs2dis/internal/view"
)

// typeAll is the objectList's unfiltered state: show every object
// regardless of ContextType. Kept outside model.ContextType's own
// range so it can't collide with a real context kind.
const typeAll model.ContextType = -1

// Model is the browser's full UI state: the loaded file, a bubbles
// list.Model over its objects, and the decoded instructions for
// whichever object is currently selected.
type Model struct {
	file *container.File

	allObjects []view.ObjectSummary
	typeFilter model.ContextType

	objectList list.Model
	help       help.Model

	codeScroll   int
	instructions []disasm.Instruction

	width  int
	height int

	keys KeyMap
}

// objectItem adapts a view.ObjectSummary to bubbles/list's list.Item
// interface.
type objectItem struct {
	summary view.ObjectSummary
}

func (i objectItem) FilterValue() string {
	return i.summary.Name
}

func (i objectItem) Title() string {
	return fmt.Sprintf("#%d %s", i.summary.Index, i.summary.Name)
}

func (i objectItem) Description() string {
	return fmt.Sprintf("[%s] code=%d data=%d maxvar=%d varreserve=%d",
		i.summary.Type, i.summary.CodeWords, i.summary.DataSlots,
		i.summary.MaxVariableCount, i.summary.VariableReserveCount)
}

// KeyMap defines the browser's own key bindings (object selection is
// handled by the embedded list.Model and its own keymap) and
// implements help.KeyMap so the footer can render it directly.
type KeyMap struct {
	CodeUp     key.Binding
	CodeDown   key.Binding
	FilterNext key.Binding
	FilterPrev key.Binding
	Quit       key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CodeUp, k.CodeDown, k.FilterNext, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CodeUp, k.CodeDown},
		{k.FilterNext, k.FilterPrev},
		{k.Quit},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		CodeUp:     key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "scroll code up")),
		CodeDown:   key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "scroll code down")),
		FilterNext: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "filter by type")),
		FilterPrev: key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "filter by type (back)")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
