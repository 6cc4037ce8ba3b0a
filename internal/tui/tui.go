// Package tui implements the interactive terminal front end: a single-screen
// generator with category toggles, a strength meter, the recent-password
// history, and export to a file.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/config"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/export"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/history"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/password"
)

const (
	minLength = 1
	maxLength = 128

	meterCells = 10
)

// Model represents the TUI application state.
type Model struct {
	opts         password.Config
	src          password.Source
	ring         *history.Ring
	current      history.Entry
	strength     password.Strength
	status       string
	exportDir    string
	exportFormat export.Format
	dark         bool
	styles       *Palette
	width        int
	height       int
	help         help.Model
	keys         keyMap
}

// keyMap defines the key bindings for the TUI.
type keyMap struct {
	generate   key.Binding
	copy       key.Binding
	export     key.Binding
	clear      key.Binding
	upper      key.Binding
	lower      key.Binding
	digits     key.Binding
	symbols    key.Binding
	ambiguous  key.Binding
	lengthUp   key.Binding
	lengthDown key.Binding
	theme      key.Binding
	helpToggle key.Binding
	quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		generate: key.NewBinding(
			key.WithKeys("g", "enter"),
			key.WithHelp("g/enter", "generate"),
		),
		copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export history"),
		),
		clear: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "clear history"),
		),
		upper: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "uppercase"),
		),
		lower: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "lowercase"),
		),
		digits: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "digits"),
		),
		symbols: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "symbols"),
		),
		ambiguous: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "ambiguous on/off"),
		),
		lengthUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "longer"),
		),
		lengthDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shorter"),
		),
		theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		helpToggle: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.generate, k.copy, k.helpToggle, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.generate, k.copy, k.export, k.clear},
		{k.upper, k.lower, k.digits, k.symbols},
		{k.ambiguous, k.lengthUp, k.lengthDown},
		{k.theme, k.helpToggle, k.quit},
	}
}

// NewModel creates a TUI model seeded from file preferences. A nil cfg uses
// the embedded defaults.
func NewModel(cfg *config.FileConfig) *Model {
	if cfg == nil {
		cfg = config.DefaultFileConfig()
	}

	opts := password.Config{
		Length:           cfg.Generator.Length,
		Uppercase:        cfg.Generator.Uppercase,
		Lowercase:        cfg.Generator.Lowercase,
		Digits:           cfg.Generator.Digits,
		Symbols:          cfg.Generator.Symbols,
		ExcludeAmbiguous: cfg.Generator.ExcludeAmbiguous,
	}
	if opts.Length < minLength || opts.Length > maxLength {
		opts.Length = password.DefaultConfig().Length
	}

	format, err := export.ParseFormat(cfg.Export.Format)
	if err != nil {
		format = export.FormatText
	}

	dark := cfg.UI.Theme != "light"
	styles := darkPalette()
	if !dark {
		styles = lightPalette()
	}

	return &Model{
		opts:         opts,
		src:          password.CryptoSource(),
		ring:         history.NewRing(history.DefaultCapacity),
		exportDir:    cfg.Export.Directory,
		exportFormat: format,
		dark:         dark,
		styles:       styles,
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

// Init generates the first password so the screen is never empty.
func (m *Model) Init() tea.Cmd {
	m.generate()
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "g", "enter":
		m.generate()
	case "c":
		m.copyCurrent()
	case "e":
		m.exportHistory()
	case "backspace":
		m.ring.Clear()
		m.status = "history cleared"
	case "u":
		m.opts.Uppercase = !m.opts.Uppercase
		m.status = toggleStatus("uppercase", m.opts.Uppercase)
	case "l":
		m.opts.Lowercase = !m.opts.Lowercase
		m.status = toggleStatus("lowercase", m.opts.Lowercase)
	case "d":
		m.opts.Digits = !m.opts.Digits
		m.status = toggleStatus("digits", m.opts.Digits)
	case "s":
		m.opts.Symbols = !m.opts.Symbols
		m.status = toggleStatus("symbols", m.opts.Symbols)
	case "a":
		m.opts.ExcludeAmbiguous = !m.opts.ExcludeAmbiguous
		if m.opts.ExcludeAmbiguous {
			m.status = "ambiguous characters excluded"
		} else {
			m.status = "ambiguous characters included"
		}
	case "+", "=":
		if m.opts.Length < maxLength {
			m.opts.Length++
		}
		m.status = fmt.Sprintf("length %d", m.opts.Length)
	case "-", "_":
		if m.opts.Length > minLength {
			m.opts.Length--
		}
		m.status = fmt.Sprintf("length %d", m.opts.Length)
	case "t":
		m.dark = !m.dark
		if m.dark {
			m.styles = darkPalette()
		} else {
			m.styles = lightPalette()
		}
	case "?":
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *Model) generate() {
	pw := password.Generate(m.opts, m.src)
	if pw == "" {
		m.status = "enable at least one character category"
		return
	}

	m.strength = password.Evaluate(pw)
	m.current = history.Entry{
		ID:        uuid.New().String(),
		Password:  pw,
		Score:     m.strength.Score,
		Label:     string(m.strength.Label),
		CreatedAt: time.Now().UTC(),
	}
	m.ring.Add(m.current)
	m.status = ""
}

func (m *Model) copyCurrent() {
	if m.current.Password == "" {
		m.status = "nothing to copy"
		return
	}
	if err := clipboard.WriteAll(m.current.Password); err != nil {
		m.status = fmt.Sprintf("clipboard error: %v", err)
		return
	}
	m.status = "copied to clipboard"
}

func (m *Model) exportHistory() {
	if m.ring.Len() == 0 {
		m.status = "nothing to export"
		return
	}

	var path string
	if m.exportDir != "" {
		path = filepath.Join(m.exportDir, export.Filename(m.exportFormat, time.Now().UTC()))
	}

	name, err := export.WriteFile(path, m.exportFormat, m.ring.Entries())
	if err != nil {
		m.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("exported to %s", name)
}

// View renders the generator screen.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("LockForge"))
	b.WriteString("\n\n")

	if m.current.Password != "" {
		b.WriteString("  " + m.styles.password.Render(m.current.Password))
		b.WriteString("\n  " + m.renderMeter())
	} else {
		b.WriteString("  " + m.styles.dim.Render("press g to generate"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderOptions())
	b.WriteString("\n\n")

	b.WriteString(m.renderHistory())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("  " + m.styles.warn.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderMeter() string {
	filled := m.strength.Score * meterCells / 100
	if filled > meterCells {
		filled = meterCells
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", meterCells-filled)

	style := m.styles.err
	switch m.strength.Label {
	case password.Strong:
		style = m.styles.ok
	case password.Medium:
		style = m.styles.warn
	}

	return fmt.Sprintf("%s %s", style.Render(bar), style.Render(fmt.Sprintf("%d %s", m.strength.Score, m.strength.Label)))
}

func (m *Model) renderOptions() string {
	return fmt.Sprintf(
		"  length %-4d %s upper  %s lower  %s digits  %s symbols  %s no-ambiguous",
		m.opts.Length,
		checkbox(m.opts.Uppercase),
		checkbox(m.opts.Lowercase),
		checkbox(m.opts.Digits),
		checkbox(m.opts.Symbols),
		checkbox(m.opts.ExcludeAmbiguous),
	)
}

func (m *Model) renderHistory() string {
	entries := m.ring.Entries()
	if len(entries) == 0 {
		return "  " + m.styles.dim.Render("history empty")
	}

	var b strings.Builder
	b.WriteString(m.styles.dim.Render(fmt.Sprintf("  history (%d/%d)", len(entries), m.ring.Capacity())))
	for i, e := range entries {
		b.WriteString(fmt.Sprintf("\n  %d. %s  %s", i+1, e.Password, m.styles.dim.Render(fmt.Sprintf("%d %s", e.Score, e.Label))))
	}
	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func toggleStatus(name string, on bool) string {
	if on {
		return name + " enabled"
	}
	return name + " disabled"
}
