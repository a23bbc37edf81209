package render

import (
	"fmt"
	"html/template"
	"strings"
)

// TemplateKind names one of the visual templates. All templates render the
// same record; only the style table differs.
type TemplateKind string

const (
	Modern  TemplateKind = "modern"
	Classic TemplateKind = "classic"
	Minimal TemplateKind = "minimal"
)

// ParseTemplateKind maps a user-supplied name to a TemplateKind. The empty
// string selects the default (Modern).
func ParseTemplateKind(s string) (TemplateKind, error) {
	switch TemplateKind(strings.ToLower(s)) {
	case "":
		return Modern, nil
	case Modern:
		return Modern, nil
	case Classic:
		return Classic, nil
	case Minimal:
		return Minimal, nil
	}
	return "", fmt.Errorf("unknown template %q", s)
}

// Style is the per-template parameter table: typography, colors, alignment,
// section layout. CSS-typed fields are compile-time constants, never user
// input.
type Style struct {
	PaddingMM int

	FontFamily   template.CSS
	BodyColor    template.CSS
	NameColor    template.CSS
	NameWeight   template.CSS
	HeadingColor template.CSS
	AccentColor  template.CSS
	MutedColor   template.CSS
	HeaderRule   template.CSS
	HeadingRule  template.CSS

	CenterHeader   bool
	CenterHeadings bool
	ContactIcons   bool
	SplitContact   bool // contact spread over two rows
	WebsiteOwnLine bool

	DateSeparator string
	ItalicDates   bool
	MonoDates     bool

	SummaryHeading  bool
	JustifySummary  bool
	CompanyFirst    bool // lead experience entries with the company
	ItalicSecondary bool
	EducationBody   bool

	SkillsJoined   bool // single " • "-joined line instead of chips
	TwoColumnTail  bool // education and skills share a footer grid
	ShowReferences bool
	CompactRefs    bool // "role, company" on one line, email only
}

var styles = map[TemplateKind]Style{
	Modern: {
		PaddingMM:      15,
		FontFamily:     `-apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif`,
		BodyColor:      "#334155",
		NameColor:      "#0f172a",
		NameWeight:     "800",
		HeadingColor:   "#1e40af",
		AccentColor:    "#2563eb",
		MutedColor:     "#64748b",
		HeaderRule:     "2px solid #1e293b",
		HeadingRule:    "1px solid #e2e8f0",
		ContactIcons:   true,
		DateSeparator:  "–",
		SummaryHeading: true,
		ShowReferences: true,
		EducationBody:  true,
	},
	Classic: {
		PaddingMM:       20,
		FontFamily:      `Georgia, "Times New Roman", serif`,
		BodyColor:       "#1e293b",
		NameColor:       "#0f172a",
		NameWeight:      "700",
		HeadingColor:    "#0f172a",
		AccentColor:     "#475569",
		MutedColor:      "#64748b",
		HeaderRule:      "2px solid #0f172a",
		HeadingRule:     "1px solid #cbd5e1",
		CenterHeader:    true,
		CenterHeadings:  true,
		ContactIcons:    true,
		WebsiteOwnLine:  true,
		DateSeparator:   "–",
		ItalicDates:     true,
		SummaryHeading:  true,
		JustifySummary:  true,
		CompanyFirst:    true,
		ItalicSecondary: true,
		EducationBody:   true,
		SkillsJoined:    true,
		ShowReferences:  true,
		CompactRefs:     true,
	},
	Minimal: {
		PaddingMM:     20,
		FontFamily:    `-apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif`,
		BodyColor:     "#475569",
		NameColor:     "#0f172a",
		NameWeight:    "300",
		HeadingColor:  "#94a3b8",
		AccentColor:   "#94a3b8",
		MutedColor:    "#94a3b8",
		HeaderRule:    "none",
		HeadingRule:   "none",
		SplitContact:  true,
		DateSeparator: "—",
		MonoDates:     true,
		TwoColumnTail: true,
	},
}

// Section labels, printed when the template shows a heading for the section.
const (
	headingSummary    = "Professional Summary"
	headingExperience = "Experience"
	headingEducation  = "Education"
	headingSkills     = "Skills"
	headingReferences = "References"
)
