package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Palette
// ---------------------------------------------------------------------------

const (
	colorPrimary    lipgloss.Color = "#007BFF"
	colorText       lipgloss.Color = "#333333"
	colorOnPrimary  lipgloss.Color = "#FFFFFF"
	colorRowBg      lipgloss.Color = "#F1F1F1"
	colorTrackOff   lipgloss.Color = "#767577"
	colorTrackOn    lipgloss.Color = "#81B0FF"
	colorThumbOn    lipgloss.Color = "#F5DD4B"
	colorThumbOff   lipgloss.Color = "#F4F3F4"
	colorMuted      lipgloss.Color = "#8E8E93"
	colorDisabledBg lipgloss.Color = "#B0C4DE"
	colorFocus      lipgloss.Color = "#F5DD4B"
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)

	labelStyle = lipgloss.NewStyle().Width(10).Foreground(colorMuted)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorOnPrimary).
			Background(colorPrimary).
			Bold(true).
			Padding(0, 4)

	disabledButtonStyle = buttonStyle.
				Background(colorDisabledBg).
				Bold(false)

	focusMarkStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)

	trackOffStyle = lipgloss.NewStyle().Background(colorTrackOff)
	trackOnStyle  = lipgloss.NewStyle().Background(colorTrackOn)
	thumbOnStyle  = lipgloss.NewStyle().Foreground(colorThumbOn)
	thumbOffStyle = lipgloss.NewStyle().Foreground(colorThumbOff)

	spinnerStyle = lipgloss.NewStyle().Foreground(colorPrimary)

	pickerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			Width(20)

	pickerCursorStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)

	calendarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	calendarCursorStyle = lipgloss.NewStyle().Foreground(colorOnPrimary).Background(colorPrimary).Bold(true)
	calendarTodayStyle  = lipgloss.NewStyle().Foreground(colorPrimary).Underline(true)
	calendarHeadStyle   = lipgloss.NewStyle().Foreground(colorMuted)

	rowStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorRowBg).
			Padding(0, 1)

	subheadingStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)

	paragraphStyle = lipgloss.NewStyle().MarginBottom(1)

	statusStyle = lipgloss.NewStyle().Foreground(colorMuted)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	modalHintStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
