package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD250"))
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"}).
			Width(16)
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF9F43"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1)
)

// section renders a heading followed by aligned label/value rows
func section(title string, rows [][2]string) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(title))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("  "+row[0]), row[1]))
	}
	return b.String()
}

func row(label string, format string, args ...any) [2]string {
	return [2]string{label, fmt.Sprintf(format, args...)}
}
