package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Velesio/velesio-aiserver/internal/theme"
)

// Styles holds the lipgloss styles for one color scheme.
type Styles struct {
	Header    lipgloss.Style
	Input     lipgloss.Style
	Title     lipgloss.Style
	Selected  lipgloss.Style
	Meta      lipgloss.Style
	Excerpt   lipgloss.Style
	Highlight lipgloss.Style
	Empty     lipgloss.Style
	Sidebar   lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
}

// LightStyles returns the styles for the light theme.
func LightStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("249")).Padding(0, 1),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("25")),
		Meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Excerpt:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("228")),
		Empty:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("243")),
		Sidebar:   lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(lipgloss.Color("249")).Padding(0, 1),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	}
}

// DarkStyles returns the styles for the dark theme.
func DarkStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("75")),
		Meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Excerpt:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("178")),
		Empty:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		Sidebar:   lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// StylesFor returns the styles matching t.
func StylesFor(t theme.Theme) Styles {
	if t == theme.Dark {
		return DarkStyles()
	}
	return LightStyles()
}
