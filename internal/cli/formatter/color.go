package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andrisyafri/facilops/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorOrange).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle maps a calendar color to its lipgloss style.
func StatusStyle(c domain.CalendarColor) lipgloss.Style {
	switch c {
	case domain.ColorGreen:
		return StyleGreen
	case domain.ColorRed:
		return StyleRed
	case domain.ColorOrange:
		return StyleOrange
	case domain.ColorYellow:
		return StyleYellow
	case domain.ColorBlue:
		return StyleBlue
	default:
		return StyleDim
	}
}

// StatusPill returns a colored indicator for a due status, e.g. "● Overdue".
func StatusPill(s domain.DueStatus) string {
	style := StatusStyle(domain.ColorFor(s))
	switch s {
	case domain.StatusCompleted:
		return style.Render("✔ Completed")
	case domain.StatusProcessing:
		return style.Render("● Processing")
	case domain.StatusOverdue:
		return style.Render("▲ Overdue")
	case domain.StatusDueToday:
		return style.Render("● Due Today")
	case domain.StatusUpcoming:
		return style.Render("○ Upcoming")
	case domain.StatusPending, domain.StatusOneTimePending:
		return style.Render("○ Pending")
	default:
		return StyleDim.Render(string(s))
	}
}

// ContractPill returns a colored contract status indicator.
func ContractPill(s domain.ContractStatus) string {
	switch s {
	case domain.ContractActive:
		return StyleGreen.Render("● Active")
	case domain.ContractExpired:
		return StyleRed.Render("✖ Expired")
	case domain.ContractUpcoming:
		return StyleYellow.Render("○ Upcoming")
	default:
		return StyleDim.Render("— No Contract")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
