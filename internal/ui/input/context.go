package input

import "folio/internal/domain"

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Sections []domain.Section
	Current  int
}

func (c *ModelContext) CurrentIndex() int  { return c.Current }
func (c *ModelContext) TotalSections() int { return len(c.Sections) }

// SectionID returns the id at index, or "" when out of range
func (c *ModelContext) SectionID(index int) string {
	if index < 0 || index >= len(c.Sections) {
		return ""
	}
	return c.Sections[index].ID
}

// IndexOf returns the position of the section with id, or -1
func (c *ModelContext) IndexOf(id string) int {
	for i, s := range c.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}
