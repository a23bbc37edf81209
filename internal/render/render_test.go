package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
)

var allKinds = []TemplateKind{Modern, Classic, Minimal}

func TestParseTemplateKind(t *testing.T) {
	kind, err := ParseTemplateKind("")
	require.NoError(t, err)
	assert.Equal(t, Modern, kind)

	kind, err = ParseTemplateKind("Classic")
	require.NoError(t, err)
	assert.Equal(t, Classic, kind)

	_, err = ParseTemplateKind("brutalist")
	assert.Error(t, err)
}

func TestRender_EmptyRecordHasNoSections(t *testing.T) {
	for _, kind := range allKinds {
		out, err := Render(model.NewResume(), kind, Options{})
		require.NoError(t, err, kind)
		assert.Contains(t, out, "Your Name", kind)
		assert.NotContains(t, out, "Professional Summary", kind)
		assert.NotContains(t, out, ">Experience<", kind)
		assert.NotContains(t, out, ">Education<", kind)
		assert.NotContains(t, out, ">Skills<", kind)
		assert.NotContains(t, out, ">References<", kind)
	}
}

func TestRender_PopulatedSectionsAppear(t *testing.T) {
	r := model.NewResume()
	r.PersonalInfo.FullName = "Ada Lovelace"
	r.Summary = "Pioneer of computing."
	r.Experience = []model.ExperienceEntry{{ID: "e1", Company: "Acme", Role: "Engineer", StartDate: "2020", EndDate: "2022"}}
	r.Education = []model.EducationEntry{{ID: "d1", Institution: "MIT", Degree: "BSc"}}
	r.Skills = []string{"Go", "SQL"}

	for _, kind := range allKinds {
		out, err := Render(r, kind, Options{})
		require.NoError(t, err, kind)
		assert.Contains(t, out, "Ada Lovelace", kind)
		assert.Contains(t, out, "Pioneer of computing.", kind)
		assert.Contains(t, out, "Acme", kind)
		assert.Contains(t, out, "MIT", kind)
		assert.Contains(t, out, "Go", kind)
	}
}

func TestRender_CurrentPositionEndsInPresent(t *testing.T) {
	r := model.NewResume()
	r.Experience = []model.ExperienceEntry{{
		ID: "e1", Company: "Acme", Role: "Engineer",
		StartDate: "2020", EndDate: "2023", Current: true,
	}}
	for _, kind := range allKinds {
		out, err := Render(r, kind, Options{})
		require.NoError(t, err, kind)
		assert.Contains(t, out, "Present", kind)
		assert.NotContains(t, out, "2023", kind)
	}
}

func TestRender_DisplayDateOverridesEverything(t *testing.T) {
	display := "2018 - 2019"
	r := model.NewResume()
	r.Experience = []model.ExperienceEntry{{
		ID: "e1", Company: "Acme", Role: "Engineer",
		StartDate: "2020", EndDate: "2023", Current: true,
		DisplayDate: &display,
	}}
	out, err := Render(r, Modern, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "2018 - 2019")
	assert.NotContains(t, out, "2020")
	assert.NotContains(t, out, "Present")
}

func TestRender_EmptyDisplayDateStillOverrides(t *testing.T) {
	display := ""
	r := model.NewResume()
	r.Experience = []model.ExperienceEntry{{
		ID: "e1", Company: "Acme", Role: "Engineer",
		StartDate: "2020", EndDate: "2023",
		DisplayDate: &display,
	}}
	out, err := Render(r, Modern, Options{})
	require.NoError(t, err)
	assert.NotContains(t, out, "2020")
	assert.NotContains(t, out, "2023")
}

func TestRender_ModernDateUsesEnDash(t *testing.T) {
	r := model.NewResume()
	r.Experience = []model.ExperienceEntry{{ID: "e1", Role: "Engineer", StartDate: "2020", EndDate: "2022"}}
	out, err := Render(r, Modern, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "2020 – 2022")
}

func TestRender_MinimalOmitsReferences(t *testing.T) {
	r := model.NewResume()
	r.References = []model.ReferenceEntry{{ID: "r1", Name: "Charles Babbage"}}

	out, err := Render(r, Minimal, Options{})
	require.NoError(t, err)
	assert.NotContains(t, out, "References")
	assert.NotContains(t, out, "Charles Babbage")

	out, err = Render(r, Modern, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "References")
	assert.Contains(t, out, "Charles Babbage")
}

func TestRender_ClassicJoinsSkills(t *testing.T) {
	r := model.NewResume()
	r.Skills = []string{"Go", "SQL", "Kubernetes"}

	out, err := Render(r, Classic, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "Go • SQL • Kubernetes")
	assert.NotContains(t, out, `class="chip"`)

	out, err = Render(r, Modern, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, `class="chip"`)
}

func TestRender_EmphasisBecomesStructuralNodes(t *testing.T) {
	r := model.NewResume()
	r.Experience = []model.ExperienceEntry{{
		ID: "e1", Company: "Acme", Role: "Engineer",
		Description: "- **Led** a team of *5*",
	}}
	out, err := Render(r, Modern, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>Led</strong>")
	assert.Contains(t, out, "<em>5</em>")
	assert.Contains(t, out, "<li>")
}

func TestRender_UserTextIsEscaped(t *testing.T) {
	r := model.NewResume()
	r.Summary = `<script>alert("x")</script>`
	r.Skills = []string{"<b>sneaky</b>"}

	for _, kind := range allKinds {
		out, err := Render(r, kind, Options{})
		require.NoError(t, err, kind)
		assert.NotContains(t, out, "<script>", kind)
		assert.NotContains(t, out, "<b>sneaky</b>", kind)
		assert.Contains(t, out, "&lt;script&gt;", kind)
	}
}

func TestRender_ExportModeDropsDecoration(t *testing.T) {
	r := model.NewResume()
	r.Summary = "text"

	screen, err := Render(r, Modern, Options{})
	require.NoError(t, err)
	assert.Contains(t, screen, "box-shadow")
	assert.Contains(t, screen, "padding: 15mm")

	export, err := Render(r, Modern, Options{ForExport: true})
	require.NoError(t, err)
	assert.NotContains(t, export, "box-shadow")
	assert.NotContains(t, export, "padding: 15mm")
}

func TestRender_PaginationSafetyAnnotations(t *testing.T) {
	out, err := Render(model.NewResume(), Modern, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "break-inside: avoid")
}

func TestRender_FixedA4Width(t *testing.T) {
	for _, kind := range allKinds {
		out, err := Render(model.NewResume(), kind, Options{})
		require.NoError(t, err, kind)
		assert.Contains(t, out, "width: 210mm", kind)
	}
}
