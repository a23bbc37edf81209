// Package render turns a resume record into a print-ready HTML document at
// fixed A4 width. One renderer serves every template; the differences live
// entirely in the style table. Free-text fields go through the markup
// formatter and are emitted as structural nodes, so user input is always
// escaped by html/template.
package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"resume-builder/internal/markup"
	"resume-builder/internal/model"
)

//go:embed document.tmpl
var documentTmpl string

var page = template.Must(template.New("document").Parse(documentTmpl))

// Options selects the render mode. Export mode drops the on-screen
// decorations (shadow, outer margin, template padding) because the
// rasterizer supplies the page margin itself and the two must not stack.
type Options struct {
	ForExport bool
}

// Render produces the full HTML document for the record in the given
// template. The record is read, never mutated; multi-page behavior is left
// to the export rasterizer slicing the tall single-column flow.
func Render(r *model.Resume, kind TemplateKind, opts Options) (string, error) {
	st, ok := styles[kind]
	if !ok {
		return "", fmt.Errorf("unknown template %q", kind)
	}

	var buf strings.Builder
	if err := page.Execute(&buf, buildPage(r, st, opts)); err != nil {
		return "", fmt.Errorf("execute resume template: %w", err)
	}
	return buf.String(), nil
}

type contactItem struct {
	Icon string
	Text string
}

type entryView struct {
	Primary   string
	Secondary string
	Date      string
	Body      []markup.Block
}

type referenceView struct {
	Name    string
	Role    string
	Company string
	Email   string
	Phone   string
}

type pageView struct {
	Style  Style
	Export bool

	Name        string
	ContactRows [][]contactItem

	SummaryHeading    string
	ExperienceHeading string
	EducationHeading  string
	SkillsHeading     string
	ReferencesHeading string

	Summary      []markup.Block
	Experience   []entryView
	Education    []entryView
	Skills       []string
	SkillsJoined string
	References   []referenceView
}

func buildPage(r *model.Resume, st Style, opts Options) pageView {
	v := pageView{
		Style:  st,
		Export: opts.ForExport,

		Name:        r.PersonalInfo.FullName,
		ContactRows: contactRows(r.PersonalInfo, st),

		SummaryHeading:    headingSummary,
		ExperienceHeading: headingExperience,
		EducationHeading:  headingEducation,
		SkillsHeading:     headingSkills,
		ReferencesHeading: headingReferences,

		Summary: markup.Format(r.Summary),
		Skills:  r.Skills,
	}
	if v.Name == "" {
		v.Name = "Your Name"
	}
	if st.SkillsJoined {
		v.SkillsJoined = strings.Join(r.Skills, " • ")
	}

	for _, e := range r.Experience {
		ev := entryView{
			Primary:   e.Role,
			Secondary: e.Company,
			Date:      dateLabel(e.DisplayDate, e.StartDate, e.EndDate, e.Current, st.DateSeparator),
			Body:      markup.Format(e.Description),
		}
		if st.CompanyFirst {
			ev.Primary, ev.Secondary = e.Company, e.Role
		}
		v.Experience = append(v.Experience, ev)
	}

	for _, e := range r.Education {
		ev := entryView{
			Primary:   e.Institution,
			Secondary: e.Degree,
			Date:      dateLabel(e.DisplayDate, e.StartDate, e.EndDate, e.Current, st.DateSeparator),
		}
		if st.EducationBody {
			ev.Body = markup.Format(e.Description)
		}
		v.Education = append(v.Education, ev)
	}

	if st.ShowReferences {
		for _, ref := range r.References {
			v.References = append(v.References, referenceView{
				Name:    ref.Name,
				Role:    ref.Role,
				Company: ref.Company,
				Email:   ref.Email,
				Phone:   ref.Phone,
			})
		}
	}
	return v
}

// dateLabel resolves the per-entry date string: DisplayDate verbatim when
// defined, otherwise "start sep end" with "Present" standing in for the end
// date of a current position.
func dateLabel(display *string, start, end string, current bool, sep string) string {
	if display != nil {
		return *display
	}
	if current {
		end = "Present"
	}
	return start + " " + sep + " " + end
}

func contactRows(p model.PersonalInfo, st Style) [][]contactItem {
	icon := func(s string) string {
		if st.ContactIcons {
			return s + " "
		}
		return ""
	}
	add := func(row []contactItem, ic, text string) []contactItem {
		if text == "" {
			return row
		}
		return append(row, contactItem{Icon: icon(ic), Text: text})
	}

	var first []contactItem
	first = add(first, "📍", p.Location)
	first = add(first, "📞", p.Phone)
	first = add(first, "✉️", p.Email)

	var second []contactItem
	switch {
	case st.SplitContact:
		second = add(second, "🔗", p.LinkedIn)
		second = add(second, "🌐", p.Website)
	case st.WebsiteOwnLine:
		first = add(first, "🔗", p.LinkedIn)
		second = add(second, "🌐", p.Website)
	default:
		first = add(first, "🔗", p.LinkedIn)
		first = add(first, "🌐", p.Website)
	}

	var rows [][]contactItem
	if len(first) > 0 {
		rows = append(rows, first)
	}
	if len(second) > 0 {
		rows = append(rows, second)
	}
	return rows
}
