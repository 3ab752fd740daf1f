package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending, Highlight lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	SymOK, SymFail, SymBullet, SymSelected string
}

var current = themeFor("classic")

// Themes lists the names SetTheme understands.
var Themes = []string{"classic", "neon", "mono"}

func KnownTheme(name string) bool {
	for _, t := range Themes {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}

func SetTheme(name string) { current = themeFor(name) }

// Expose what renderers need
func Current() Theme { return current }

func themeFor(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:      "neon",
			Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:     lipgloss.NewStyle().Faint(true),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
			Border:    lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("13"),
			SymOK: "✔", SymFail: "✖", SymBullet: "•", SymSelected: "◼",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Error: plain.Bold(true), Pending: plain,
			Highlight: plain.Reverse(true),
			Border:    lipgloss.ASCIIBorder(), BorderColor: lipgloss.NoColor{},
			SymOK: "ok", SymFail: "x", SymBullet: "-", SymSelected: "*",
		}
	default: // classic
		return Theme{
			Name:      "classic",
			Title:     lipgloss.NewStyle().Bold(true),
			Muted:     lipgloss.NewStyle().Faint(true),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Border:    lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("8"),
			SymOK: "✔", SymFail: "✖", SymBullet: "•", SymSelected: "●",
		}
	}
}

// ClassStyle folds a class list into one style. Unknown classes are ignored.
func (t Theme) ClassStyle(classes []string) lipgloss.Style {
	s := lipgloss.NewStyle()
	for _, c := range classes {
		switch {
		case c == "font-medium":
			s = s.Inherit(t.Title)
		case c == "text-gray-500" || c == "text-gray-700" || c == "text-xs":
			s = s.Inherit(t.Muted)
		case strings.HasPrefix(c, "bg-yellow"):
			s = s.Inherit(t.Highlight)
		case c == "error":
			s = s.Inherit(t.Error)
		case c == "border" || strings.HasPrefix(c, "rounded"):
			s = s.Border(t.Border).BorderForeground(t.BorderColor)
		case strings.HasPrefix(c, "p-"):
			s = s.Padding(0, 1)
		}
	}
	return s
}
