package content

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Parse decodes a portfolio document. Each section is decoded on its own so a
// malformed section only drops that section; the problem is recorded on the
// returned Content instead of failing the whole document.
func Parse(data []byte) (*Content, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Message: "document must be a JSON object", Cause: err}
	}
	if raw == nil {
		return nil, &ParseError{Message: "document is null"}
	}

	c := &Content{}
	decodeString(raw, "title", &c.Title)
	decodeString(raw, "name", &c.Name)

	if msg, ok := present(raw, SectionExpertise); ok {
		var v Expertise
		if err := json.Unmarshal(msg, &v); err != nil {
			c.addProblem(SectionExpertise, err)
		} else {
			c.Expertise = &v
		}
	}
	if msg, ok := present(raw, SectionProjects); ok {
		var v Projects
		if err := json.Unmarshal(msg, &v); err != nil {
			c.addProblem(SectionProjects, err)
		} else {
			c.Projects = &v
		}
	}
	if msg, ok := present(raw, SectionCareer); ok {
		var v Career
		if err := json.Unmarshal(msg, &v); err != nil {
			c.addProblem(SectionCareer, err)
		} else {
			c.Career = &v
		}
	}
	if msg, ok := present(raw, SectionTestimonials); ok {
		var v Testimonials
		if err := json.Unmarshal(msg, &v); err != nil {
			c.addProblem(SectionTestimonials, err)
		} else {
			c.Testimonials = &v
		}
	}

	return c, nil
}

func (c *Content) addProblem(id SectionID, err error) {
	c.Problems = append(c.Problems, SectionProblem{
		Section: id,
		Cause:   fmt.Errorf("malformed %s section: %w", id, err),
	})
}

// present returns the raw section payload unless the key is missing or null
func present(raw map[string]json.RawMessage, id SectionID) (json.RawMessage, bool) {
	msg, ok := raw[string(id)]
	if !ok {
		return nil, false
	}
	if bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
		return nil, false
	}
	return msg, true
}

func decodeString(raw map[string]json.RawMessage, key string, dst *string) {
	if msg, ok := raw[key]; ok {
		_ = json.Unmarshal(msg, dst)
	}
}
