// Package styles holds the lipgloss styles the TUI draws with and the
// palettes (built-in or loaded from YAML) they are derived from.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles is the full set of styles derived from one palette.
type Styles struct {
	Palette *ColorPalette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	DoneText lipgloss.Style
	Overdue  lipgloss.Style
	NoDate   lipgloss.Style
	Removing lipgloss.Style
	Action   lipgloss.Style

	BadgeDone    lipgloss.Style
	BadgePending lipgloss.Style

	FilterActive   lipgloss.Style
	FilterInactive lipgloss.Style
	Stats          lipgloss.Style
	Empty          lipgloss.Style

	InputBox      lipgloss.Style
	InputFocused  lipgloss.Style
	InputRejected lipgloss.Style
	InputLabel    lipgloss.Style

	Confirm lipgloss.Style

	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	ErrorMsg   lipgloss.Style
	SuccessMsg lipgloss.Style
}

// New derives Styles from p.
func New(p *ColorPalette) *Styles {
	if p == nil {
		p = DefaultPalette()
	}
	return &Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Border),
		Cell: lipgloss.NewStyle().
			Foreground(p.Text),
		Selected: lipgloss.NewStyle().
			Background(p.Surface),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		DoneText: lipgloss.NewStyle().
			Foreground(p.Muted).
			Strikethrough(true),
		Overdue: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Warning),
		NoDate: lipgloss.NewStyle().
			Foreground(p.Muted),
		Removing: lipgloss.NewStyle().
			Foreground(p.Muted).
			Faint(true),
		Action: lipgloss.NewStyle().
			Foreground(p.Muted),

		BadgeDone: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.BadgeDone).
			Padding(0, 1),
		BadgePending: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.BadgePending).
			Padding(0, 1),

		FilterActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Background(p.Primary).
			Padding(0, 1),
		FilterInactive: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		Stats: lipgloss.NewStyle().
			Foreground(p.Muted),
		Empty: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true).
			Padding(1, 2),

		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
		InputRejected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Error).
			Padding(0, 1),
		InputLabel: lipgloss.NewStyle().
			Foreground(p.Muted),

		Confirm: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Warning).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Warning).
			Padding(0, 1),

		HelpBar: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),
		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		SuccessMsg: lipgloss.NewStyle().
			Foreground(p.Secondary),
	}
}

// active holds the styles the TUI currently draws with.
//
// Not thread-safe: it is only replaced from the bubbletea event loop.
var active = New(DefaultPalette())

// Active returns the styles currently in use.
func Active() *Styles {
	return active
}

// SetActivePalette switches every style to p.
func SetActivePalette(p *ColorPalette) {
	active = New(p)
}

// SetActiveTheme switches to a built-in theme.
func SetActiveTheme(name ThemeName) {
	SetActivePalette(GetPalette(name))
}
