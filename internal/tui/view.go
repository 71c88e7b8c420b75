package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/codefionn/rechenschnell/internal/calc"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("rechenschnell"),
		"",
		m.viewDisplay(),
		"",
		m.viewKeypad(),
		"",
		m.viewFooter(),
	)

	if m.width >= historyPanelTriggerWidth {
		panel := m.viewHistory()
		spacer := strings.Repeat(" ", historyPanelSpacing)
		return lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, panel)
	}

	return left
}

// viewDisplay renders the expression line, the preview annotation and the
// primary readout, selected per the display priority of the editor.
func (m Model) viewDisplay() string {
	expression := m.editor.DisplayExpression()

	annotation := " "
	if preview, ok := m.editor.Preview(); ok {
		annotation = "= " + calc.FormatReadable(preview)
	}

	readout := calc.FormatReadable(m.editor.HighlightedValue())
	readoutLine := readoutStyle.Render(readout)
	if readout == calc.ResultError {
		readoutLine = errorReadoutStyle.Render(readout)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		expressionStyle.Render(expression),
		previewStyle.Render(annotation),
		readoutLine,
	)
}

// keypadRows is the keypad split into rendered rows, the wide key counting
// for two columns. Cursor navigation uses the same layout, so the
// highlighted key and the arrow-key model never disagree.
var keypadRows = buildKeypadRows()

func buildKeypadRows() [][]int {
	var rows [][]int
	var row []int
	cols := 0
	for i, action := range calc.Keypad {
		row = append(row, i)
		cols++
		if action.Wide {
			cols++
		}
		if cols >= calc.KeypadColumns {
			rows = append(rows, row)
			row, cols = nil, 0
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// viewKeypad renders the keypad grid row by row. The key under the cursor is
// inverted; the zero key spans two columns.
func (m Model) viewKeypad() string {
	gap := strings.Repeat(" ", keyGap)

	var rows []string
	for _, indices := range keypadRows {
		var cells []string
		for _, i := range indices {
			action := calc.Keypad[i]
			style := m.keyStyle(action)
			if i == m.cursor {
				style = cursorKeyStyle
			}
			if action.Wide {
				style = style.Width(2*keyWidth + keyGap)
			}
			cells = append(cells, style.Render(action.Label))
		}
		rows = append(rows, strings.Join(cells, gap))
	}

	return strings.Join(rows, "\n")
}

func (m Model) keyStyle(action calc.Action) lipgloss.Style {
	switch action.Variant {
	case calc.VariantOperator:
		return operatorKeyStyle
	case calc.VariantCommand:
		return commandKeyStyle
	case calc.VariantEquals:
		return equalsKeyStyle
	default:
		return digitKeyStyle
	}
}

// viewHistory renders the side panel of committed evaluations, most recent
// first.
func (m Model) viewHistory() string {
	title := historyTitleStyle.Render("History")
	if m.historyFocus {
		title = historyTitleStyle.Render("History (↑/↓ select, enter recall, x clear)")
	}

	var lines []string
	lines = append(lines, title, "")

	ledger := m.editor.Ledger()
	if ledger == nil || ledger.Len() == 0 {
		lines = append(lines, historyEmptyStyle.Render("No calculations yet"))
	} else {
		innerWidth := historyPanelWidth - 2
		for i, entry := range ledger.Entries() {
			line := fmt.Sprintf("%s = %s", entry.DisplayExpression, entry.Result)
			line = truncate.StringWithTail(line, uint(innerWidth), "…")
			if m.historyFocus && i == m.historySel {
				line = historySelectedStyle.Render("› " + line)
			} else {
				line = historyItemStyle.Render("  " + line)
			}
			lines = append(lines, line)
		}
	}

	return historyPanelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewFooter() string {
	hints := "type to calculate · enter = · ⌫ delete · c clear · n ± · % · tab history · q quit"
	if m.historyFocus {
		hints = "↑/↓ select · enter recall · x clear history · esc back · q quit"
	}
	return statusStyle.Render(truncate.StringWithTail(hints, uint(m.width), "…")) +
		"\n" + statusStyle.Render("v"+m.version)
}
