package tui

import "github.com/charmbracelet/lipgloss"

const (
	keyWidth  = 7
	keyGap    = 1
	gridWidth = 4*keyWidth + 3*keyGap

	historyPanelTriggerWidth = 72
	historyPanelWidth        = 34
	historyPanelSpacing      = 2
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	expressionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Width(gridWidth).
			Align(lipgloss.Right)

	previewStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(gridWidth).
			Align(lipgloss.Right)

	readoutStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Width(gridWidth).
			Align(lipgloss.Right)

	errorReadoutStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("196")).
				Width(gridWidth).
				Align(lipgloss.Right)

	digitKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("237")).
			Width(keyWidth).
			Align(lipgloss.Center)

	operatorKeyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("231")).
				Background(lipgloss.Color("208")).
				Width(keyWidth).
				Align(lipgloss.Center)

	commandKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("240")).
			Width(keyWidth).
			Align(lipgloss.Center)

	equalsKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("170")).
			Width(keyWidth).
			Align(lipgloss.Center)

	cursorKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("231")).
			Width(keyWidth).
			Align(lipgloss.Center)

	historyPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("241")).
				Padding(0, 1).
				Width(historyPanelWidth)

	historyTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Bold(true)

	historyItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	historySelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("231")).
				Bold(true)

	historyEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
