// Package content provides the read-only portfolio content tree consumed by the
// layout estimator.
package content

import (
	"encoding/json"
	"fmt"
)

// SectionID identifies one of the fixed portfolio sections
type SectionID string

const (
	SectionExpertise    SectionID = "expertise"
	SectionProjects     SectionID = "projects"
	SectionCareer       SectionID = "career"
	SectionTestimonials SectionID = "testimonials"
)

// AllSections lists every section in canonical order
var AllSections = []SectionID{
	SectionExpertise,
	SectionProjects,
	SectionCareer,
	SectionTestimonials,
}

// Valid reports whether id belongs to the closed section set
func (id SectionID) Valid() bool {
	switch id {
	case SectionExpertise, SectionProjects, SectionCareer, SectionTestimonials:
		return true
	}
	return false
}

// Content is the parsed portfolio document. A nil section pointer means the
// section key was missing (or could not be decoded) in the source document.
type Content struct {
	Title        string
	Name         string
	Expertise    *Expertise
	Projects     *Projects
	Career       *Career
	Testimonials *Testimonials

	// Problems lists sections that were present but malformed
	Problems []SectionProblem
}

// SectionProblem records a section that was dropped during tolerant decoding
type SectionProblem struct {
	Section SectionID
	Cause   error
}

func (p SectionProblem) String() string {
	return fmt.Sprintf("%s: %v", p.Section, p.Cause)
}

// Has reports whether the section is present in the content
func (c *Content) Has(id SectionID) bool {
	if c == nil {
		return false
	}
	switch id {
	case SectionExpertise:
		return c.Expertise != nil
	case SectionProjects:
		return c.Projects != nil
	case SectionCareer:
		return c.Career != nil
	case SectionTestimonials:
		return c.Testimonials != nil
	}
	return false
}

// Expertise holds skill categories
type Expertise struct {
	Categories []Category `json:"categories"`
}

// Category is a titled list of skills
type Category struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Item is a skill entry. In the source document it is either a bare string or
// an object carrying a name field.
type Item struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// Text returns the display text for the item
func (i Item) Text() string {
	return i.Name
}

// UnmarshalJSON accepts both "Go" and {"name": "Go"}
func (i *Item) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*i = Item{Name: s}
		return nil
	}
	type plain Item
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*i = Item(p)
	return nil
}

// Projects groups projects into the portfolio's fixed sub-lists
type Projects struct {
	Featured         []Project `json:"featured"`
	MedicalImaging   []Project `json:"medicalImaging"`
	Orthodontic      []Project `json:"orthodontic"`
	EquipmentControl []Project `json:"equipmentControl"`
	Enterprise       []Project `json:"enterprise"`
	OpenSource       []Project `json:"openSource"`
}

// All concatenates every sub-list in display order
func (p *Projects) All() []Project {
	if p == nil {
		return nil
	}
	lists := [][]Project{
		p.Featured,
		p.MedicalImaging,
		p.Orthodontic,
		p.EquipmentControl,
		p.Enterprise,
		p.OpenSource,
	}
	var all []Project
	for _, l := range lists {
		all = append(all, l...)
	}
	return all
}

// Project is a single portfolio project
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// Career holds the employment timeline
type Career struct {
	Timeline []Entry `json:"timeline"`
}

// Entry is one position on the career timeline
type Entry struct {
	Company    string   `json:"company"`
	Role       string   `json:"role"`
	Period     string   `json:"period"`
	Highlights []string `json:"highlights,omitempty"`
}

// Testimonials holds the featured quote and the remaining ones
type Testimonials struct {
	Featured *Testimonial  `json:"featured"`
	Items    []Testimonial `json:"items"`
}

// Testimonial is a quote attributed to a person
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}
