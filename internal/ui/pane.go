package ui

import "github.com/charmbracelet/bubbles/viewport"

// sectionPane is the scroll container of one mounted section. The
// controller works in pixels, the viewport in lines; cellH converts.
type sectionPane struct {
	vp    viewport.Model
	cellH int
}

func newSectionPane(width, height, cellH int) *sectionPane {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = false
	return &sectionPane{vp: vp, cellH: cellH}
}

func (p *sectionPane) ScrollTop() int    { return p.vp.YOffset * p.cellH }
func (p *sectionPane) ScrollHeight() int { return p.vp.TotalLineCount() * p.cellH }
func (p *sectionPane) ClientHeight() int { return p.vp.Height * p.cellH }

// SetScrollTop rounds down to a whole line
func (p *sectionPane) SetScrollTop(top int) {
	p.vp.SetYOffset(top / p.cellH)
}

func (p *sectionPane) resize(width, height int) {
	p.vp.Width = width
	p.vp.Height = height
	p.vp.SetYOffset(p.vp.YOffset)
}

func (p *sectionPane) setContent(s string) {
	p.vp.SetContent(s)
	p.vp.SetYOffset(p.vp.YOffset)
}

func (p *sectionPane) scrollLines(n int) {
	switch {
	case n > 0:
		p.vp.ScrollDown(n)
	case n < 0:
		p.vp.ScrollUp(-n)
	}
}

func (p *sectionPane) scrollPages(n int) {
	p.scrollLines(n * p.vp.Height)
}

func (p *sectionPane) top()    { p.vp.GotoTop() }
func (p *sectionPane) bottom() { p.vp.GotoBottom() }

func (p *sectionPane) View() string { return p.vp.View() }
