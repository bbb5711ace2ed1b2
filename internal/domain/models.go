package domain

// Section is one full-viewport page of the portfolio
type Section struct {
	ID    string // stable identifier, e.g. "hero"
	Title string // label shown in the navigation bar
	Color string // theme tag, e.g. "neon-purple"
	Icon  string // single glyph shown in the mobile bar
	Body  string // markdown source, rendered lazily
}

// Link is an external profile link
type Link struct {
	Label string
	URL   string
}

// Portfolio is the full content set the host renders
type Portfolio struct {
	Owner    string
	Tagline  string
	Email    string
	Location string
	Sections []Section
	Socials  []Link
}

// IndexOf returns the position of the section with the given id, or -1
func (p Portfolio) IndexOf(id string) int {
	for i, s := range p.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// ContactMessage is what the contact form submits
type ContactMessage struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}
