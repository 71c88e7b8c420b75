package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/codefionn/rechenschnell/internal/calc"
	"github.com/codefionn/rechenschnell/internal/logger"
)

// Model is the bubbletea model of the calculator. It translates key events
// into keypad actions, feeds them to the editor one at a time, and renders
// the resulting state. All mutable state lives in the editor and its ledger;
// the model only holds presentation concerns.
type Model struct {
	editor *calc.Editor
	keys   keyMap

	width  int
	height int
	ready  bool

	cursor       int // highlighted keypad index
	historyFocus bool
	historySel   int

	version string
}

// New creates the calculator model around an editor. The terminal size is
// probed once as a fallback; the first WindowSizeMsg takes over.
func New(editor *calc.Editor, version string) Model {
	m := Model{
		editor:  editor,
		keys:    defaultKeyMap(),
		width:   80,
		height:  24,
		version: version,
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		m.width, m.height = w, h
		m.ready = true
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. One key event is fully processed before the
// next is accepted, so editor transitions never interleave.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		if m.width < historyPanelTriggerWidth {
			m.historyFocus = false
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			logger.Info("quit requested")
			return m, tea.Quit
		}
		if m.historyFocus {
			return m.updateHistory(msg)
		}
		return m.updateKeypad(msg)
	}

	return m, nil
}

func (m Model) updateKeypad(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.History):
		if m.editor.Ledger() != nil && m.editor.Ledger().Len() > 0 {
			m.historyFocus = true
			m.historySel = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.Equals):
		m.apply(calc.CmdEquals)
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		m.apply(calc.CmdDelete)
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.apply(calc.CmdClear)
		return m, nil

	case key.Matches(msg, m.keys.Negate):
		m.apply(calc.CmdNegate)
		return m, nil

	case key.Matches(msg, m.keys.Percent):
		m.apply(calc.CmdPercent)
		return m, nil

	case key.Matches(msg, m.keys.Press):
		m.editor.Apply(calc.Keypad[m.cursor])
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
		return m, nil
	}

	if s := msg.String(); len(s) == 1 {
		m.apply(s)
	}
	return m, nil
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.editor.Ledger().Entries()

	switch {
	case key.Matches(msg, m.keys.Back):
		m.historyFocus = false

	case key.Matches(msg, m.keys.Up):
		if m.historySel > 0 {
			m.historySel--
		}

	case key.Matches(msg, m.keys.Down):
		if m.historySel < len(entries)-1 {
			m.historySel++
		}

	case key.Matches(msg, m.keys.Recall):
		if m.historySel < len(entries) {
			entry := entries[m.historySel]
			logger.Debug("recalling history entry %s", entry.ID)
			m.editor.Recall(entry)
		}
		m.historyFocus = false

	case key.Matches(msg, m.keys.ClearHistory):
		m.editor.Ledger().Clear()
		m.historyFocus = false
		m.historySel = 0
	}

	return m, nil
}

// moveCursor moves the keypad cursor within the rendered row layout from
// view.go. Vertical moves clamp the column to the target row, so the short
// rows below the wide zero key stay reachable.
func (m *Model) moveCursor(dr, dc int) {
	r, c := 0, 0
	for ri, row := range keypadRows {
		for ci, i := range row {
			if i == m.cursor {
				r, c = ri, ci
			}
		}
	}

	r += dr
	if r < 0 || r >= len(keypadRows) {
		return
	}
	row := keypadRows[r]

	c += dc
	if dc != 0 && (c < 0 || c >= len(row)) {
		return
	}
	if c >= len(row) {
		c = len(row) - 1
	}
	m.cursor = row[c]
}

// apply routes a keypad value (literal character or command name) to the
// editor, ignoring values no key carries.
func (m *Model) apply(value string) {
	if action, ok := calc.ActionByValue(value); ok {
		m.editor.Apply(action)
	}
}
