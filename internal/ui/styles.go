// Package ui renders garden records for the terminal: tables, status badges
// and the small text helpers every command shares.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Garden palette
var (
	Leaf       = lipgloss.Color("#4CAF50")
	Sprout     = lipgloss.Color("#8BC34A")
	Water      = lipgloss.Color("#2196F3")
	HarvestGld = lipgloss.Color("#FFC107")
	Soil       = lipgloss.Color("#8D6E63")
	Muted      = lipgloss.Color("#9E9E9E")
	Danger     = lipgloss.Color("#E53935")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Leaf).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Sprout).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(HarvestGld)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Leaf).
			Padding(0, 1)

	headerCell = lipgloss.NewStyle().
			Foreground(Leaf).
			Bold(true).
			Padding(0, 1)

	bodyCell = lipgloss.NewStyle().
			Padding(0, 1)
)

// Title renders a screen heading with an optional subtitle line.
func Title(title, subtitle string) string {
	if subtitle == "" {
		return TitleStyle.Render(title)
	}
	return TitleStyle.Render(title) + "\n" + SubtitleStyle.Render(subtitle)
}

func Success(msg string) string { return SuccessStyle.Render(msg) }

func Error(msg string) string { return ErrorStyle.Render(msg) }

func Warning(msg string) string { return WarningStyle.Render(msg) }

// Table renders rows under headers with a rounded border. An empty row set
// renders empty instead of a bare header.
func Table(headers []string, rows [][]string, empty string) string {
	if len(rows) == 0 {
		return MutedStyle.Render(empty)
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(Soil)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return bodyCell
		})
	return t.Render()
}

// KeyValues renders label/value pairs as an aligned block inside a card.
func KeyValues(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		if len(p[0]) > width {
			width = len(p[0])
		}
	}
	label := lipgloss.NewStyle().Foreground(Muted).Width(width + 2)

	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, label.Render(p[0])+p[1])
	}
	return CardStyle.Render(strings.Join(lines, "\n"))
}

// Bar draws a horizontal share bar of width cells for percent in [0, 100].
func Bar(percent float64, width int, color lipgloss.Color) string {
	filled := int(percent/100*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		MutedStyle.Render(strings.Repeat("░", width-filled))
}

// Money formats amount in currency. USD uses a dollar sign.
func Money(currency string, amount float64) string {
	if currency == "" || currency == "USD" {
		return fmt.Sprintf("$%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}

const DateLayout = "2006-01-02"

func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DateLayout)
}

// Quantity trims a trailing ".0" so whole amounts read naturally.
func Quantity(v float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.2f", v), ".00")
}

func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
