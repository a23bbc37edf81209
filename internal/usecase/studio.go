// Package usecase owns the editing session: the single in-memory resume
// record, its whole-field mutation operations, the AI enhancement flows, and
// the export pipeline. All collaborators (id generation, text generation,
// rasterization) are injected at construction.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"resume-builder/internal/model"
)

// TextGenerator is the external text-generation collaborator. Every call is
// a fallible network operation; callers treat empty or failed results as "no
// change" to the record.
type TextGenerator interface {
	Enhance(ctx context.Context, text, roleContext string) (string, error)
	GenerateSummary(ctx context.Context, r *model.Resume) (string, error)
	ParseResume(ctx context.Context, rawText string) (*model.Resume, error)
	GenerateTailored(ctx context.Context, resumeText, linkedinText, jobDescription, location string) (*model.Resume, error)
}

// SummaryTarget is the enhancement slot for summary generation; entry ids
// are the slots for per-entry enhancement.
const SummaryTarget = "summary"

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrNoGenerator   = errors.New("text generation is not configured")
)

// Studio is the editing session. One record, one mutex; every mutation is a
// whole-field (or whole-record) replacement, so recovery from any failure is
// always "change nothing".
type Studio struct {
	mu     sync.Mutex
	record *model.Resume

	newID  model.IDGenerator
	gen    TextGenerator
	raster Rasterizer
	outDir string

	// flight keeps at most one text-generation call in flight per target.
	flight singleflight.Group
}

// NewStudio starts an empty session. gen and raster may be nil; the
// corresponding operations then fail with a typed error instead of at
// startup.
func NewStudio(gen TextGenerator, raster Rasterizer, newID model.IDGenerator, outDir string) *Studio {
	if newID == nil {
		newID = model.NewID
	}
	return &Studio{
		record: model.NewResume(),
		newID:  newID,
		gen:    gen,
		raster: raster,
		outDir: outDir,
	}
}

// Record returns a deep-copy snapshot of the current record.
func (s *Studio) Record() *model.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Clone()
}

// ReplaceRecord swaps in a whole new record atomically. Used for AI parse
// and tailoring results so a multi-field merge cannot interleave with
// in-progress manual edits.
func (s *Studio) ReplaceRecord(r *model.Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = r
}

// SetPersonalInfo replaces the whole contact block.
func (s *Studio) SetPersonalInfo(p model.PersonalInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.PersonalInfo = p
}

// SetSummary replaces the summary text.
func (s *Studio) SetSummary(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.Summary = text
}

// SetSkills replaces the skill list, preserving the given order.
func (s *Studio) SetSkills(skills []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.Skills = append([]string{}, skills...)
}

// SplitSkills turns the editor's comma-separated skills field into the
// ordered list the record stores.
func SplitSkills(csv string) []string {
	out := []string{}
	for _, s := range strings.Split(csv, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// AddExperience prepends a blank entry and returns it. The description
// starts with a bullet marker so the editor opens in list mode.
func (s *Studio) AddExperience() model.ExperienceEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := model.ExperienceEntry{ID: s.newID(), Description: "- "}
	s.record.PrependExperience(e)
	return e
}

// UpdateExperience replaces the identified entry wholesale.
func (s *Studio) UpdateExperience(e model.ExperienceEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.record.UpdateExperience(e) {
		return ErrEntryNotFound
	}
	return nil
}

// RemoveExperience filters the identified entry out.
func (s *Studio) RemoveExperience(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.record.RemoveExperience(id) {
		return ErrEntryNotFound
	}
	return nil
}

// AddEducation prepends a blank entry and returns it.
func (s *Studio) AddEducation() model.EducationEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := model.EducationEntry{ID: s.newID(), Description: "- "}
	s.record.PrependEducation(e)
	return e
}

// UpdateEducation replaces the identified entry wholesale.
func (s *Studio) UpdateEducation(e model.EducationEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.record.UpdateEducation(e) {
		return ErrEntryNotFound
	}
	return nil
}

// RemoveEducation filters the identified entry out.
func (s *Studio) RemoveEducation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.record.RemoveEducation(id) {
		return ErrEntryNotFound
	}
	return nil
}

// AddReference appends a blank reference and returns it.
func (s *Studio) AddReference() model.ReferenceEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := model.ReferenceEntry{ID: s.newID()}
	s.record.AppendReference(e)
	return e
}

// UpdateReference replaces the identified entry wholesale.
func (s *Studio) UpdateReference(e model.ReferenceEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.record.UpdateReference(e) {
		return ErrEntryNotFound
	}
	return nil
}

// RemoveReference filters the identified entry out.
func (s *Studio) RemoveReference(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.record.RemoveReference(id) {
		return ErrEntryNotFound
	}
	return nil
}

// SaveProject serializes the record as a project file and suggests a
// download name.
func (s *Studio) SaveProject() ([]byte, string, error) {
	snap := s.Record()
	data, err := model.EncodeProject(snap)
	if err != nil {
		return nil, "", err
	}
	return data, model.ProjectFilename(snap), nil
}

// LoadProject parses and validates a project file and replaces the record
// atomically. On any failure the session is untouched.
func (s *Studio) LoadProject(data []byte) error {
	rec, err := model.DecodeProject(data, s.newID)
	if err != nil {
		return err
	}
	s.ReplaceRecord(rec)
	return nil
}

// EnhanceExperience sends the identified entry's description through the
// text generator and replaces it with the improved version. At most one
// call per entry id is in flight; a failed or empty result leaves the
// description unchanged.
func (s *Studio) EnhanceExperience(ctx context.Context, id string) error {
	if s.gen == nil {
		return ErrNoGenerator
	}
	s.mu.Lock()
	entry, ok := s.record.ExperienceByID(id)
	s.mu.Unlock()
	if !ok {
		return ErrEntryNotFound
	}
	if entry.Description == "" {
		return nil
	}

	improved, err, _ := s.flight.Do(id, func() (interface{}, error) {
		return s.gen.Enhance(ctx, entry.Description, entry.Role)
	})
	if err != nil {
		slog.Warn("enhancement failed, description unchanged", "entry", id, "error", err)
		return fmt.Errorf("enhancement failed: %w", err)
	}
	text, _ := improved.(string)
	if text == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok = s.record.ExperienceByID(id)
	if !ok {
		// Removed while the call was in flight; the result has nowhere to go.
		return nil
	}
	entry.Description = text
	s.record.UpdateExperience(entry)
	return nil
}

// GenerateSummary asks the text generator for a fresh summary and replaces
// the summary field. An empty result is "no change".
func (s *Studio) GenerateSummary(ctx context.Context) error {
	if s.gen == nil {
		return ErrNoGenerator
	}
	snap := s.Record()

	summary, err, _ := s.flight.Do(SummaryTarget, func() (interface{}, error) {
		return s.gen.GenerateSummary(ctx, snap)
	})
	if err != nil {
		slog.Warn("summary generation failed, summary unchanged", "error", err)
		return fmt.Errorf("summary generation failed: %w", err)
	}
	text, _ := summary.(string)
	if text == "" {
		return nil
	}
	s.SetSummary(text)
	return nil
}

// ImportFromText parses pasted resume text into a structured record and
// replaces the session record atomically, with fresh entry ids.
func (s *Studio) ImportFromText(ctx context.Context, rawText string) error {
	if s.gen == nil {
		return ErrNoGenerator
	}
	rec, err := s.gen.ParseResume(ctx, rawText)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	if rec == nil {
		return nil
	}
	rec.AssignIDs(s.newID)
	s.ReplaceRecord(rec)
	return nil
}

// Tailor generates a job-targeted record and replaces the session record
// atomically, with fresh entry ids.
func (s *Studio) Tailor(ctx context.Context, resumeText, linkedinText, jobDescription, location string) error {
	if s.gen == nil {
		return ErrNoGenerator
	}
	rec, err := s.gen.GenerateTailored(ctx, resumeText, linkedinText, jobDescription, location)
	if err != nil {
		return fmt.Errorf("tailoring failed: %w", err)
	}
	if rec == nil {
		return nil
	}
	rec.AssignIDs(s.newID)
	s.ReplaceRecord(rec)
	return nil
}
