package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay draws popupContent boxed and centred over mainContent.
// Rows covered by the popup are replaced whole; the rest of the screen is
// greyed out.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, title, popupContent string, width, height int) string {
	body := popupContent
	if title != "" {
		body = pr.styles.PopupTitle.Render(title) + "\n" + popupContent
	}
	styled := pr.styles.Popup.Render(body)

	popupLines := strings.Split(styled, "\n")
	if len(popupLines) > height {
		popupLines = popupLines[:height]
	}

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	top := (height - len(popupLines)) / 2
	for i, line := range popupLines {
		base[top+i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
	}
	return strings.Join(base[:height], "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes color and style sequences
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(StripANSI(s), "\n")
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	for i, line := range lines {
		lines[i] = gray.Render(line)
	}
	return strings.Join(lines, "\n")
}
