package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() *Resume {
	display := "2018 - 2019"
	r := NewResume()
	r.PersonalInfo = PersonalInfo{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Location: "London",
	}
	r.Summary = "Pioneer of computing."
	r.Experience = []ExperienceEntry{
		{ID: "e1", Company: "Analytical Engines", Role: "Programmer", StartDate: "1842", Current: true, Description: "- Wrote the first program"},
		{ID: "e2", Company: "Babbage & Co", Role: "Analyst", StartDate: "1840", EndDate: "1842", DisplayDate: &display},
	}
	r.Education = []EducationEntry{
		{ID: "d1", Institution: "Home Tutoring", Degree: "Mathematics", StartDate: "1830", EndDate: "1835"},
	}
	r.Skills = []string{"Mathematics", "Analysis"}
	r.References = []ReferenceEntry{
		{ID: "r1", Name: "Charles Babbage", Role: "Inventor", Company: "Analytical Engines", Email: "cb@example.com"},
	}
	return r
}

func TestEncodeProject_StripsIDs(t *testing.T) {
	data, err := EncodeProject(sampleResume())
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"id"`)
	assert.Contains(t, string(data), `"personalInfo"`)
}

func TestProject_RoundTrip(t *testing.T) {
	orig := sampleResume()
	data, err := EncodeProject(orig)
	require.NoError(t, err)

	got, err := DecodeProject(data, seqGen())
	require.NoError(t, err)

	// Everything but the ids survives the round trip.
	assert.Equal(t, orig.PersonalInfo, got.PersonalInfo)
	assert.Equal(t, orig.Summary, got.Summary)
	assert.Equal(t, orig.Skills, got.Skills)
	require.Len(t, got.Experience, 2)
	assert.Equal(t, "Analytical Engines", got.Experience[0].Company)
	assert.True(t, got.Experience[0].Current)
	require.NotNil(t, got.Experience[1].DisplayDate)
	assert.Equal(t, "2018 - 2019", *got.Experience[1].DisplayDate)
	assert.Equal(t, "Charles Babbage", got.References[0].Name)

	// Ids are regenerated, never imported.
	assert.Equal(t, "id-1", got.Experience[0].ID)
	assert.NotEqual(t, orig.Experience[0].ID, got.Experience[0].ID)
}

func TestDecodeProject_PartialDocument(t *testing.T) {
	got, err := DecodeProject([]byte(`{"personalInfo":{"fullName":"Ada"}}`), nil)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.PersonalInfo.FullName)
	assert.Empty(t, got.Experience)
	assert.NotNil(t, got.Experience)
	assert.NotNil(t, got.Skills)
}

func TestDecodeProject_ExperienceKeyAlone(t *testing.T) {
	got, err := DecodeProject([]byte(`{"experience":[]}`), nil)
	require.NoError(t, err)
	assert.Empty(t, got.Experience)
}

func TestDecodeProject_RejectsNotAResume(t *testing.T) {
	_, err := DecodeProject([]byte(`{"summary":"just text"}`), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not look like a resume")
}

func TestDecodeProject_RejectsInvalidJSON(t *testing.T) {
	_, err := DecodeProject([]byte(`{"personalInfo":`), nil)
	require.Error(t, err)
}

func TestProjectFilename(t *testing.T) {
	r := NewResume()
	assert.Equal(t, "Resume_Project.json", ProjectFilename(r))

	r.PersonalInfo.FullName = "Ada  Lovelace"
	name := ProjectFilename(r)
	assert.Equal(t, "Ada_Lovelace_Project.json", name)
	assert.False(t, strings.Contains(name, " "))
}
