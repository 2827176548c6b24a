package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/gravitrone/bugform/internal/api"
	"github.com/gravitrone/bugform/internal/blocks"
)

// glamourStyle maps the configured theme onto a glamour standard style.
// Auto-detection is avoided since it queries the terminal.
func glamourStyle(theme string) string {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		return "light"
	case "notty", "plain":
		return "notty"
	case "dracula":
		return "dracula"
	default:
		return "dark"
	}
}

// previewMarkdown lays the draft out as the markdown shown in the preview.
func previewMarkdown(d api.BugDraft) string {
	var b strings.Builder
	title := d.Summary
	if title == "" {
		title = "(no summary)"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	orUnset := func(s string) string {
		if s == "" {
			return "_unset_"
		}
		return s
	}
	fmt.Fprintf(&b, "- **Product:** %s\n", orUnset(d.Product))
	fmt.Fprintf(&b, "- **Component:** %s\n", orUnset(d.Component))
	fmt.Fprintf(&b, "- **Version:** %s\n", orUnset(d.Version))
	if len(d.Blocks) > 0 {
		fmt.Fprintf(&b, "- **Blocks:** %s\n", blocks.Join(d.Blocks))
	}
	if strings.TrimSpace(d.Description) != "" {
		b.WriteString("\n" + d.Description + "\n")
	}
	return b.String()
}

// renderPreview renders the draft through glamour, wrapped to width.
func renderPreview(d api.BugDraft, theme string, width int) (string, error) {
	if width <= 0 {
		width = 72
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle(theme)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("preview renderer: %w", err)
	}
	out, err := r.Render(previewMarkdown(d))
	if err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}
