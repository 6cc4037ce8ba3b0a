package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is a stylesheet for one theme built from named [lipgloss.Style] fields.
type Palette struct {
	title    lipgloss.Style
	password lipgloss.Style
	ok       lipgloss.Style
	warn     lipgloss.Style
	err      lipgloss.Style
	dim      lipgloss.Style
}

// NewPalette builds a stylesheet from hex colors for the title, password,
// success, warning, error, and muted roles.
func NewPalette(t, p, s, w, e, d string) *Palette {
	return &Palette{
		title:    NewBold(t).MarginBottom(1),
		password: NewBold(p),
		ok:       NewBold(s),
		warn:     NewStyle(w),
		err:      NewBold(e),
		dim:      NewEm(d),
	}
}

func darkPalette() *Palette {
	return NewPalette("#7D56F4", "#FAFAFA", "#04B575", "#FFA500", "#FF5F87", "#626262")
}

func lightPalette() *Palette {
	return NewPalette("#5A32C8", "#1A1A1A", "#027A4E", "#B87400", "#D13354", "#8A8A8A")
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
