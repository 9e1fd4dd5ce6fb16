// Package cli implements the interactive menu for the promo feature.
package cli

import (
	"fmt"
	"strings"
)

const lineWidth = 50

// Header renders a banner framed by '=' rules with the text centered.
func Header(text string) string {
	rule := strings.Repeat("=", lineWidth)
	return fmt.Sprintf("\n%s\n%s\n%s", rule, center(text, lineWidth), rule)
}

// Subheader renders a section title framed by '-' rules.
func Subheader(text string) string {
	rule := strings.Repeat("-", lineWidth)
	return fmt.Sprintf("\n%s\n%s\n%s", rule, text, rule)
}

// Table renders rows under headers, each column left-padded to its width.
func Table(headers []string, rows [][]string, widths []int) string {
	var b strings.Builder

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = ljust(h, widths[i])
	}
	headerRow := strings.Join(cells, " | ")
	b.WriteString(headerRow)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", len(headerRow)))

	for _, row := range rows {
		for i, item := range row {
			cells[i] = ljust(item, widths[i])
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(cells, " | "))
	}
	return b.String()
}

// Wrap breaks text into lines no longer than width, on word boundaries.
func Wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func center(text string, width int) string {
	pad := width - len(text)
	if pad <= 0 {
		return text
	}
	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}

func ljust(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return text + strings.Repeat(" ", width-len(text))
}
