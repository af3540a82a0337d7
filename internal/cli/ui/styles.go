package ui

import "github.com/charmbracelet/lipgloss"

const (
	boxUnchecked = "☐"
	boxChecked   = "☑"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	// Цвета срочности как в вебе: просрочено — красный,
	// меньше суток — оранжевый, иначе зелёный.
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	soonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	laterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
)
