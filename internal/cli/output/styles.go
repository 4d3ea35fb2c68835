package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used across commands.
type Styles struct {
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Header  lipgloss.Style
}

// newStyles returns styled or plain styles. Plain styles render text
// unchanged, keeping markdown and JSON output free of ANSI codes.
func newStyles(colored bool) *Styles {
	if !colored {
		plain := lipgloss.NewStyle()
		return &Styles{
			Bold:    plain,
			Muted:   plain,
			Error:   plain,
			Warning: plain,
			Info:    plain,
			Success: plain,
			Header:  plain,
		}
	}
	return &Styles{
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
	}
}
