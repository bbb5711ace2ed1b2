package content

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Renderer turns section markdown into styled terminal text. Renderers and
// output are cached per wrap width.
type Renderer struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
	output    map[cacheKey]string
}

type cacheKey struct {
	width int
	body  string
}

// NewRenderer creates a renderer for a glamour style name. "auto" detects the
// terminal background.
func NewRenderer(style string) *Renderer {
	if style == "" {
		style = "auto"
	}
	return &Renderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
		output:    make(map[cacheKey]string),
	}
}

// Render renders body wrapped to width columns
func (r *Renderer) Render(body string, width int) (string, error) {
	if width < 10 {
		width = 10
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := cacheKey{width: width, body: body}
	if out, ok := r.output[key]; ok {
		return out, nil
	}

	tr, err := r.rendererFor(width)
	if err != nil {
		return "", err
	}
	out, err := tr.Render(body)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	r.output[key] = out
	return out, nil
}

func (r *Renderer) rendererFor(width int) (*glamour.TermRenderer, error) {
	if tr, ok := r.renderers[width]; ok {
		return tr, nil
	}

	styleOpt := glamour.WithStandardStyle(r.style)
	if r.style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	r.renderers[width] = tr
	return tr, nil
}
