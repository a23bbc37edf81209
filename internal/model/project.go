package model

import (
	"encoding/json"
	"strings"
)

// EncodeProject serializes the record as a project file. Entry ids carry no
// display semantics and are regenerated on import, so they are stripped from
// the snapshot before marshaling.
func EncodeProject(r *Resume) ([]byte, error) {
	snap := r.Clone()
	for i := range snap.Experience {
		snap.Experience[i].ID = ""
	}
	for i := range snap.Education {
		snap.Education[i].ID = ""
	}
	for i := range snap.References {
		snap.References[i].ID = ""
	}
	return json.MarshalIndent(snap, "", "  ")
}

// DecodeProject parses and validates a project file, tolerating missing
// top-level keys (they default to the empty record shape) and assigning
// fresh ids to every entry. On any failure the returned record is nil and
// the caller's state is untouched.
func DecodeProject(data []byte, gen IDGenerator) (*Resume, error) {
	if err := ValidateProject(data); err != nil {
		return nil, err
	}
	out := NewResume()
	if err := json.Unmarshal(data, out); err != nil {
		return nil, err
	}
	// Unmarshal nils out collections that were present-but-null.
	if out.Experience == nil {
		out.Experience = []ExperienceEntry{}
	}
	if out.Education == nil {
		out.Education = []EducationEntry{}
	}
	if out.Skills == nil {
		out.Skills = []string{}
	}
	if out.References == nil {
		out.References = []ReferenceEntry{}
	}
	out.AssignIDs(gen)
	return out, nil
}

// ProjectFilename derives the suggested download name from the record,
// matching the editor convention of underscored full names.
func ProjectFilename(r *Resume) string {
	name := strings.Join(strings.Fields(r.PersonalInfo.FullName), "_")
	if name == "" {
		name = "Resume"
	}
	return name + "_Project.json"
}
