// Package content loads the portfolio sections and renders their markdown.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/pelletier/go-toml/v2"

	"folio/internal/domain"
)

// ManifestName is the file listing owner details and the section order
const ManifestName = "sections.toml"

// ErrNoSections is returned when a manifest defines no sections
var ErrNoSections = errors.New("content: no sections defined")

//go:embed defaults
var defaults embed.FS

type manifest struct {
	Owner    string          `toml:"owner"`
	Tagline  string          `toml:"tagline"`
	Email    string          `toml:"email"`
	Location string          `toml:"location"`
	Socials  []manifestLink  `toml:"socials"`
	Sections []manifestEntry `toml:"sections"`
}

type manifestLink struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
}

type manifestEntry struct {
	ID    string `toml:"id"`
	Title string `toml:"title"`
	Color string `toml:"color"`
	Icon  string `toml:"icon"`
	File  string `toml:"file"`
}

// Load reads the portfolio from dir, or the built-in one when dir is empty
func Load(dir string) (domain.Portfolio, error) {
	if dir == "" {
		sub, err := fs.Sub(defaults, "defaults")
		if err != nil {
			return domain.Portfolio{}, fmt.Errorf("failed to open built-in content: %w", err)
		}
		return LoadFS(sub)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads sections.toml and the markdown files it names from fsys
func LoadFS(fsys fs.FS) (domain.Portfolio, error) {
	data, err := fs.ReadFile(fsys, ManifestName)
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("failed to read %s: %w", ManifestName, err)
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return domain.Portfolio{}, fmt.Errorf("failed to parse %s: %w", ManifestName, err)
	}
	if len(m.Sections) == 0 {
		return domain.Portfolio{}, ErrNoSections
	}

	p := domain.Portfolio{
		Owner:    m.Owner,
		Tagline:  m.Tagline,
		Email:    m.Email,
		Location: m.Location,
	}
	for _, l := range m.Socials {
		p.Socials = append(p.Socials, domain.Link{Label: l.Label, URL: l.URL})
	}

	seen := make(map[string]bool, len(m.Sections))
	for i, e := range m.Sections {
		if e.ID == "" {
			return domain.Portfolio{}, fmt.Errorf("section %d has no id", i)
		}
		if seen[e.ID] {
			return domain.Portfolio{}, fmt.Errorf("duplicate section id %q", e.ID)
		}
		seen[e.ID] = true

		s := domain.Section{ID: e.ID, Title: e.Title, Color: e.Color, Icon: e.Icon}
		if s.Title == "" {
			s.Title = e.ID
		}
		if e.File != "" {
			body, err := fs.ReadFile(fsys, path.Clean(e.File))
			if err != nil {
				return domain.Portfolio{}, fmt.Errorf("failed to read section %q: %w", e.ID, err)
			}
			s.Body = string(body)
		}
		p.Sections = append(p.Sections, s)
	}
	return p, nil
}
