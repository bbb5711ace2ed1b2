package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"folio/internal/domain"
)

// Screen layout. Rows outside the body: progress, nav, ribbon, dots, status
// and help. Columns either side of the body hold the prev/next arrows.
const (
	ReservedRows = 6
	GutterWidth  = 2
	bodyTop      = 3
)

// StatusKind colours the status line
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Owner          string
	Sections       []domain.Section
	Current        int
	IsMobile       bool
	CanAdvance     bool
	CanRetreat     bool
	Exhausted      bool
	ScrollProgress float64
	Body           string
	StatusMessage  string
	StatusKind     StatusKind
	HelpView       string
	PopupTitle     string
	PopupContent   string
}

// HitKind identifies a clickable element
type HitKind int

const (
	HitNone HitKind = iota
	HitSection
	HitPrev
	HitNext
)

// Hit is what a click at a screen cell lands on
type Hit struct {
	Kind  HitKind
	Index int
}

type hitRegion struct {
	row    int
	x0, x1 int // half-open
	hit    Hit
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
	hits        []hitRegion
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// BodySize returns the pane dimensions for a screen of width x height
func BodySize(width, height int) (int, int) {
	w := width - 2*GutterWidth
	h := height - ReservedRows
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	r.hits = r.hits[:0]
	if state.Width <= 2*GutterWidth || state.Height <= ReservedRows {
		return "Terminal too small"
	}

	rows := make([]string, 0, state.Height)
	rows = append(rows, r.renderProgress(state))
	rows = append(rows, r.renderNav(state))
	rows = append(rows, r.renderRibbon(state))
	rows = append(rows, r.renderBody(state)...)
	rows = append(rows, r.renderDots(state))
	rows = append(rows, r.renderStatus(state))
	rows = append(rows, runewidth.Truncate(state.HelpView, state.Width, ""))

	screen := strings.Join(rows, "\n")
	if state.PopupContent != "" {
		// the popup owns the screen; nothing underneath is clickable
		r.hits = r.hits[:0]
		return r.popupRender.RenderPopupOverlay(screen, state.PopupTitle, state.PopupContent, state.Width, state.Height)
	}
	return screen
}

// HitAt returns the element under cell (x, y) from the last Render
func (r *Renderer) HitAt(x, y int) (Hit, bool) {
	for _, h := range r.hits {
		if h.row == y && x >= h.x0 && x < h.x1 {
			return h.hit, true
		}
	}
	return Hit{}, false
}

func (r *Renderer) addHit(row, x0, x1 int, hit Hit) {
	r.hits = append(r.hits, hitRegion{row: row, x0: x0, x1: x1, hit: hit})
}

// ProgressFraction is how far through the deck the current page is
func ProgressFraction(current, total int) float64 {
	if total <= 1 {
		return 1
	}
	return float64(current) / float64(total-1)
}

func (r *Renderer) renderProgress(state ViewState) string {
	filled := int(math.Round(ProgressFraction(state.Current, len(state.Sections)) * float64(state.Width)))
	fill := r.styles.ProgressFill
	if state.Current < len(state.Sections) {
		fill = fill.Foreground(ColorFor(state.Sections[state.Current].Color))
	}
	return fill.Render(strings.Repeat("━", filled)) +
		r.styles.ProgressTrack.Render(strings.Repeat("━", state.Width-filled))
}

func (r *Renderer) renderNav(state ViewState) string {
	const row = 1
	owner := r.styles.Title.Render(state.Owner)
	x := lipgloss.Width(owner)

	if state.IsMobile {
		s := state.Sections[state.Current]
		current := lipgloss.NewStyle().Foreground(ColorFor(s.Color)).Bold(true).
			Render(fmt.Sprintf("%s %s", s.Icon, s.Title))
		counter := r.styles.Dim.Render(fmt.Sprintf("%d/%d", state.Current+1, len(state.Sections)))
		gap := state.Width - x - lipgloss.Width(current) - lipgloss.Width(counter) - 2
		if gap < 1 {
			return runewidth.Truncate(current+" "+counter, state.Width, "")
		}
		return owner + strings.Repeat(" ", gap) + current + "  " + counter
	}

	var b strings.Builder
	b.WriteString(owner)
	x += 2
	b.WriteString("  ")
	for i, s := range state.Sections {
		label := " " + s.Title + " "
		w := runewidth.StringWidth(label)
		if x+w > state.Width {
			break
		}
		style := r.styles.Tab
		if i == state.Current {
			style = lipgloss.NewStyle().Foreground(ColorFor(s.Color)).Bold(true).Underline(true)
		}
		b.WriteString(style.Render(label))
		r.addHit(row, x, x+w, Hit{Kind: HitSection, Index: i})
		x += w
	}
	return b.String()
}

// RibbonText is the visible slice of the title strip. Every section owns a
// screen-wide slot and the strip scrolls at half the page speed.
func RibbonText(sections []domain.Section, current, width int) string {
	if width <= 0 {
		return ""
	}
	var strip strings.Builder
	for _, s := range sections {
		title := strings.ToUpper(s.Title)
		tw := runewidth.StringWidth(title)
		if tw > width {
			title = runewidth.Truncate(title, width, "")
			tw = runewidth.StringWidth(title)
		}
		left := (width - tw) / 2
		strip.WriteString(strings.Repeat(" ", left))
		strip.WriteString(title)
		strip.WriteString(strings.Repeat(" ", width-tw-left))
	}

	offset := current * width / 2
	visible := runewidth.TruncateLeft(strip.String(), offset, "")
	visible = runewidth.Truncate(visible, width, "")
	return runewidth.FillRight(visible, width)
}

func (r *Renderer) renderRibbon(state ViewState) string {
	return r.styles.Ribbon.Render(RibbonText(state.Sections, state.Current, state.Width))
}

func (r *Renderer) renderBody(state ViewState) []string {
	bodyW, bodyH := BodySize(state.Width, state.Height)
	lines := strings.Split(state.Body, "\n")

	mid := bodyH / 2
	out := make([]string, bodyH)
	for i := 0; i < bodyH; i++ {
		left := strings.Repeat(" ", GutterWidth)
		right := strings.Repeat(" ", GutterWidth)
		if i == mid {
			if state.CanRetreat {
				left = r.styles.Arrow.Render("‹") + " "
				r.addHit(bodyTop+i, 0, GutterWidth, Hit{Kind: HitPrev})
			}
			if state.CanAdvance {
				right = " " + r.styles.Arrow.Render("›")
				r.addHit(bodyTop+i, state.Width-GutterWidth, state.Width, Hit{Kind: HitNext})
			}
		}

		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		if w := lipgloss.Width(line); w < bodyW {
			line += strings.Repeat(" ", bodyW-w)
		}
		out[i] = left + line + right
	}
	return out
}

func (r *Renderer) renderDots(state ViewState) string {
	row := state.Height - 3
	items := make([]string, len(state.Sections))
	widths := make([]int, len(state.Sections))
	// mobile shows a bar of titles, each squeezed into an equal share
	share := (state.Width - 2*(len(state.Sections)-1)) / len(state.Sections)
	if share < 1 {
		share = 1
	}
	for i, s := range state.Sections {
		var glyph string
		switch {
		case state.IsMobile:
			glyph = runewidth.Truncate(s.Title, share, "…")
		case i == state.Current:
			glyph = "●"
		default:
			glyph = "○"
		}
		style := r.styles.Dim
		if i == state.Current {
			style = lipgloss.NewStyle().Foreground(ColorFor(s.Color)).Bold(true)
		}
		items[i] = style.Render(glyph)
		widths[i] = runewidth.StringWidth(glyph)
	}

	total := 0
	for _, w := range widths {
		total += w
	}
	total += 2 * (len(items) - 1)
	x := (state.Width - total) / 2
	if x < 0 {
		x = 0
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", x))
	for i, item := range items {
		if i > 0 {
			b.WriteString("  ")
			x += 2
		}
		b.WriteString(item)
		r.addHit(row, x, x+widths[i], Hit{Kind: HitSection, Index: i})
		x += widths[i]
	}
	return b.String()
}

func (r *Renderer) renderStatus(state ViewState) string {
	var indicator string
	if state.Exhausted {
		indicator = r.styles.Ready.Render("● Ready")
	} else {
		pct := int(math.Round(state.ScrollProgress * 100))
		indicator = r.styles.Scroll.Render(fmt.Sprintf("▼ Scroll %d%%", pct))
	}

	var msg string
	if state.StatusMessage != "" {
		style := r.styles.StatusInfo
		switch state.StatusKind {
		case StatusSuccess:
			style = r.styles.StatusSuccess
		case StatusError:
			style = r.styles.StatusError
		}
		avail := state.Width - lipgloss.Width(indicator) - 1
		if avail < 0 {
			avail = 0
		}
		msg = style.Render(runewidth.Truncate(state.StatusMessage, avail, "…"))
	}

	gap := state.Width - lipgloss.Width(msg) - lipgloss.Width(indicator)
	if gap < 1 {
		return msg
	}
	return msg + strings.Repeat(" ", gap) + indicator
}
