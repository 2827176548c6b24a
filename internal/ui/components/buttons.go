package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonTone picks the colour of a button in a ButtonRow.
type ButtonTone int

const (
	ToneDefault ButtonTone = iota
	ToneWarning
	ToneSuccess
)

var toneColors = map[ButtonTone]lipgloss.Color{
	ToneDefault: lipgloss.Color("#436b77"),
	ToneWarning: lipgloss.Color("#ffbf3f"),
	ToneSuccess: lipgloss.Color("#5fb27a"),
}

// ButtonSpec describes one button.
type ButtonSpec struct {
	Label string
	Tone  ButtonTone
}

func buttonStyle(tone ButtonTone, focused bool) lipgloss.Style {
	color := toneColors[tone]
	style := lipgloss.NewStyle().Padding(0, 1)
	if focused {
		return style.Background(color).Foreground(lipgloss.Color("#16161d")).Bold(true)
	}
	return style.Foreground(color)
}

// Button renders a single button, filled when focused.
func Button(spec ButtonSpec, focused bool) string {
	return buttonStyle(spec.Tone, focused).Render("[" + SanitizeOneLine(spec.Label) + "]")
}

// ButtonRow renders buttons left to right. focused is the index drawn as
// selected, or -1 for none. Rows wider than width wrap.
func ButtonRow(buttons []ButtonSpec, focused, width int) string {
	if len(buttons) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(buttons))
	for i, b := range buttons {
		rendered = append(rendered, Button(b, i == focused)+" ")
	}
	rows := wrapSegments(rendered, width)
	for i, row := range rows {
		rows[i] = strings.TrimRight(row, " ")
	}
	return strings.Join(rows, "\n")
}
