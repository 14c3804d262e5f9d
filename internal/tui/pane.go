package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// pane frames a single content line with a rounded border and a title in the
// top edge. The content starts two cells right of the pane's left edge and
// one line below its top edge.
type pane struct {
	Title   string
	Content string
	Focused bool
}

const (
	paneContentX = 2
	paneContentY = 1
)

func (p pane) Render(minWidth int) string {
	border := colorMuted
	if p.Focused {
		border = colorSuccess
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)

	contentWidth := max(ansi.StringWidth(p.Content), minWidth-4, 1)
	innerWidth := contentWidth + 2

	titleText := ""
	if t := strings.TrimSpace(p.Title); t != "" && innerWidth > 3 {
		titleText = " " + ansi.Truncate(t, innerWidth-3, "…") + " "
	}
	dashes := max(innerWidth-ansi.StringWidth(titleText)-1, 0)

	top := borderStyle.Render("╭─") + titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", dashes)+"╮")
	pad := strings.Repeat(" ", contentWidth-ansi.StringWidth(p.Content))
	mid := borderStyle.Render("│") + " " + p.Content + pad + " " + borderStyle.Render("│")
	bottom := borderStyle.Render("╰" + strings.Repeat("─", innerWidth) + "╯")

	return strings.Join([]string{top, mid, bottom}, "\n")
}
