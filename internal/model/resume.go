package model

import "github.com/google/uuid"

// PersonalInfo holds the contact block shown in the resume header. Every
// field defaults to the empty string and empty fields are skipped when
// rendering.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// ExperienceEntry is one position in the work history. Dates are free-form
// strings, never parsed. When Current is true EndDate is ignored in favor of
// "Present". When DisplayDate is set (including to the empty string) it
// replaces the start/end/current triple entirely.
type ExperienceEntry struct {
	ID          string  `json:"id,omitempty"`
	Company     string  `json:"company"`
	Role        string  `json:"role"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Current     bool    `json:"current"`
	DisplayDate *string `json:"displayDate,omitempty"`
	Description string  `json:"description"`
}

// EducationEntry mirrors ExperienceEntry with institution/degree in place of
// company/role. Description is optional.
type EducationEntry struct {
	ID          string  `json:"id,omitempty"`
	Institution string  `json:"institution"`
	Degree      string  `json:"degree"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Current     bool    `json:"current"`
	DisplayDate *string `json:"displayDate,omitempty"`
	Description string  `json:"description,omitempty"`
}

// ReferenceEntry is a named contact. No dates, no free text.
type ReferenceEntry struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// Resume is the canonical in-memory record. The editor owns it and mutates
// it through whole-field replacement; the renderer only ever reads it.
type Resume struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Summary      string            `json:"summary"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Skills       []string          `json:"skills"`
	References   []ReferenceEntry  `json:"references"`
}

// IDGenerator produces opaque entry identifiers. Injected rather than
// reached for ambiently so tests can pin ids.
type IDGenerator func() string

// NewID is the default generator.
func NewID() string { return uuid.NewString() }

// NewResume returns an empty record with non-nil collections.
func NewResume() *Resume {
	return &Resume{
		Experience: []ExperienceEntry{},
		Education:  []EducationEntry{},
		Skills:     []string{},
		References: []ReferenceEntry{},
	}
}

// Clone returns a deep copy. Renderers and exporters work on snapshots so a
// concurrent editor mutation cannot tear a document mid-render.
func (r *Resume) Clone() *Resume {
	out := &Resume{
		PersonalInfo: r.PersonalInfo,
		Summary:      r.Summary,
		Experience:   make([]ExperienceEntry, len(r.Experience)),
		Education:    make([]EducationEntry, len(r.Education)),
		Skills:       append([]string{}, r.Skills...),
		References:   append([]ReferenceEntry{}, r.References...),
	}
	for i, e := range r.Experience {
		if e.DisplayDate != nil {
			d := *e.DisplayDate
			e.DisplayDate = &d
		}
		out.Experience[i] = e
	}
	for i, e := range r.Education {
		if e.DisplayDate != nil {
			d := *e.DisplayDate
			e.DisplayDate = &d
		}
		out.Education[i] = e
	}
	return out
}

// PrependExperience inserts at the front: newest entries are edited first.
func (r *Resume) PrependExperience(e ExperienceEntry) {
	r.Experience = append([]ExperienceEntry{e}, r.Experience...)
}

// UpdateExperience replaces the entry with the same ID wholesale. Returns
// false when no entry carries that id.
func (r *Resume) UpdateExperience(e ExperienceEntry) bool {
	for i := range r.Experience {
		if r.Experience[i].ID == e.ID {
			r.Experience[i] = e
			return true
		}
	}
	return false
}

// RemoveExperience filters the identified entry out of the sequence.
func (r *Resume) RemoveExperience(id string) bool {
	kept := r.Experience[:0]
	found := false
	for _, e := range r.Experience {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	r.Experience = kept
	return found
}

// ExperienceByID returns a copy of the identified entry.
func (r *Resume) ExperienceByID(id string) (ExperienceEntry, bool) {
	for _, e := range r.Experience {
		if e.ID == id {
			return e, true
		}
	}
	return ExperienceEntry{}, false
}

// PrependEducation inserts at the front, like experience.
func (r *Resume) PrependEducation(e EducationEntry) {
	r.Education = append([]EducationEntry{e}, r.Education...)
}

// UpdateEducation replaces the entry with the same ID wholesale.
func (r *Resume) UpdateEducation(e EducationEntry) bool {
	for i := range r.Education {
		if r.Education[i].ID == e.ID {
			r.Education[i] = e
			return true
		}
	}
	return false
}

// RemoveEducation filters the identified entry out of the sequence.
func (r *Resume) RemoveEducation(id string) bool {
	kept := r.Education[:0]
	found := false
	for _, e := range r.Education {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	r.Education = kept
	return found
}

// AppendReference adds at the end; references keep insertion order.
func (r *Resume) AppendReference(e ReferenceEntry) {
	r.References = append(r.References, e)
}

// UpdateReference replaces the entry with the same ID wholesale.
func (r *Resume) UpdateReference(e ReferenceEntry) bool {
	for i := range r.References {
		if r.References[i].ID == e.ID {
			r.References[i] = e
			return true
		}
	}
	return false
}

// RemoveReference filters the identified entry out of the sequence.
func (r *Resume) RemoveReference(id string) bool {
	kept := r.References[:0]
	found := false
	for _, e := range r.References {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	r.References = kept
	return found
}

// AssignIDs stamps a fresh identifier on every entry. Used when a record
// arrives from outside (project import, AI parse) where ids are absent or
// untrusted.
func (r *Resume) AssignIDs(gen IDGenerator) {
	if gen == nil {
		gen = NewID
	}
	for i := range r.Experience {
		r.Experience[i].ID = gen()
	}
	for i := range r.Education {
		r.Education[i].ID = gen()
	}
	for i := range r.References {
		r.References[i].ID = gen()
	}
}
