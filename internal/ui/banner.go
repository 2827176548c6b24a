package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
 ███████████  █████  █████   █████████  ███████████    ███████    ███████████   ██████   ██████
░░███░░░░░███░░███  ░░███   ███░░░░░███░░███░░░░░░█  ███░░░░░███ ░░███░░░░░███ ░░██████ ██████
 ░███    ░███ ░███   ░███  ███     ░░░  ░███   █ ░  ███     ░░███ ░███    ░███  ░███░█████░███
 ░██████████  ░███   ░███ ░███          ░███████   ░███      ░███ ░██████████   ░███░░███ ░███
 ░███░░░░░███ ░███   ░███ ░███    █████ ░███░░░█   ░███      ░███ ░███░░░░░███  ░███ ░░░  ░███
 ░███    ░███ ░███   ░███ ░░███  ░░███  ░███  ░    ░░███     ███  ░███    ░███  ░███      ░███
 ███████████  ░░████████   ░░█████████  █████       ░░░███████░   █████   █████ █████     █████
░░░░░░░░░░░    ░░░░░░░░     ░░░░░░░░░  ░░░░░          ░░░░░░░    ░░░░░   ░░░░░ ░░░░░     ░░░░░`

const bannerSubtitle = "File Bugs from the Terminal • Blocks Sync"

// compactBannerWidth is the terminal width below which only the title is drawn.
const compactBannerWidth = 100

// RenderBanner returns the styled banner sized for width.
func RenderBanner(width int) string {
	if width > 0 && width < compactBannerWidth {
		return "\n" + BannerStyle.Render("bugform") + "  " + MutedStyle.Render(bannerSubtitle) + "\n"
	}

	lines := strings.Split(strings.TrimPrefix(bannerArt, "\n"), "\n")
	maxWidth := 0
	var b strings.Builder
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
		b.WriteString(BannerStyle.Render(line) + "\n")
	}

	subtitleWidth := lipgloss.Width(bannerSubtitle)
	blockWidth := maxWidth
	if blockWidth < subtitleWidth {
		blockWidth = subtitleWidth
	}
	subtitle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(bannerSubtitle)
	underline := lipgloss.NewStyle().
		Foreground(ColorBorder).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(strings.Repeat("─", subtitleWidth))

	return "\n" + b.String() + "\n" + subtitle + "\n" + underline + "\n"
}
