package tui

import (
	"fmt"
	"strings"

	"github.com/mabhi256/tjs2dis/utils"
)

func (m *Model) renderCodePane() string {
	width := m.width - listPaneWidth - 6
	if width < 10 {
		width = 10
	}
	height := m.height - 4
	if height < 1 {
		height = 1
	}

	item, ok := m.objectList.SelectedItem().(objectItem)
	if !ok {
		msg := "(no objects)"
		if m.typeFilter != typeAll {
			msg = fmt.Sprintf("(no objects of type %s)", m.typeFilter)
		}
		return utils.ErrorStyle.Width(width).Height(height).Render(msg)
	}
	sel := item.summary

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", utils.InfoStyle.Render(fmt.Sprintf("object #%d %s [%s]", sel.Index, sel.Name, sel.Type)))

	end := m.codeScroll + height - 2
	if end > len(m.instructions) {
		end = len(m.instructions)
	}
	for i := m.codeScroll; i < end; i++ {
		ins := m.instructions[i]
		line := fmt.Sprintf("%09d: %-10s %s", ins.Address, ins.Mnemonic, ins.Operands)
		if ins.Comment != "" {
			line += "  " + utils.MutedStyle.Render("; "+ins.Comment)
		}
		b.WriteString(utils.TruncateString(line, width-2) + "\n")
	}

	return utils.BoxStyle.Width(width).Height(height).Render(b.String())
}
