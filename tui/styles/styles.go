package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7C3AED") // Purple
	AccentColor  = lipgloss.Color("#F59E0B") // Amber

	GainColor    = lipgloss.Color("#10B981") // Green
	LossColor    = lipgloss.Color("#EF4444") // Red
	NeutralColor = lipgloss.Color("#6B7280") // Gray

	BackgroundColor  = lipgloss.Color("#1F2937")
	BorderColor      = lipgloss.Color("#374151")
	FocusBorderColor = lipgloss.Color("#7C3AED")

	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#6B7280")
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextSecondaryColor)

	RowStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(lipgloss.Color("#374151"))
)

// Text styles
var (
	GainStyle = lipgloss.NewStyle().
			Foreground(GainColor)

	LossStyle = lipgloss.NewStyle().
			Foreground(LossColor)

	NeutralStyle = lipgloss.NewStyle().
			Foreground(NeutralColor)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	NewsNormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	NewsImportantStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(AccentColor)

	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(LossColor)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	StatusBarDescStyle = lipgloss.NewStyle().
				Foreground(TextSecondaryColor)
)

// RenderTitle renders a panel title bar, highlighted when focused.
func RenderTitle(title string, focused bool) string {
	style := TitleStyle
	if focused {
		style = style.Foreground(FocusBorderColor)
	}
	return style.Render(title)
}

// Money formats a dollar amount.
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Percent formats a percentage, styled by its sign.
func Percent(v float64) string {
	text := fmt.Sprintf("%+.2f%%", v)
	switch {
	case v > 0:
		return GainStyle.Render(text)
	case v < 0:
		return LossStyle.Render(text)
	default:
		return NeutralStyle.Render(text)
	}
}

// SignedMoney formats a dollar amount, styled by its sign.
func SignedMoney(v float64) string {
	text := fmt.Sprintf("%+.2f", v)
	switch {
	case v > 0:
		return GainStyle.Render(text)
	case v < 0:
		return LossStyle.Render(text)
	default:
		return NeutralStyle.Render(text)
	}
}
