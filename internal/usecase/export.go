package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"resume-builder/internal/render"
	"resume-builder/pkg/infrastructure"
)

// Rasterizer turns a rendered document into a paginated PDF. The chromedp
// implementation lives in pkg/infrastructure; tests inject fakes.
type Rasterizer interface {
	PrintToPDF(ctx context.Context, url string, opt infrastructure.PrintOptions) ([]byte, error)
}

// exportMarginMM is the rasterizer page margin: 1 inch on all four sides.
// The export-mode document carries no padding of its own so this margin
// never stacks with on-screen decoration.
const exportMarginMM = 25.4

// exportPageWidthMM is the A4 paper width the rasterizer prints onto.
const exportPageWidthMM = 210

// exportScale shrinks the fixed 210mm document layout into the
// paper-minus-margins content box. PrintToPDF does not shrink-to-fit on its
// own; without this the right edge of every line would be clipped.
const exportScale = (exportPageWidthMM - 2*exportMarginMM) / exportPageWidthMM

var ErrRasterizerUnavailable = errors.New("pdf rasterizer is not available")

// Preview renders the record for on-screen display in the given template.
func (s *Studio) Preview(kind render.TemplateKind) (string, error) {
	return render.Render(s.Record(), kind, render.Options{})
}

// Export renders the record in export mode, rasterizes it to PDF and writes
// the file under the studio's output directory. The off-screen scaffold used
// for capture is removed on every exit path; no partial file is left behind
// on failure.
func (s *Studio) Export(ctx context.Context, kind render.TemplateKind, filename string) (string, error) {
	if s.raster == nil {
		return "", ErrRasterizerUnavailable
	}

	html, err := render.Render(s.Record(), kind, render.Options{ForExport: true})
	if err != nil {
		return "", err
	}

	scaffold, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return "", fmt.Errorf("create export scaffold: %w", err)
	}
	defer os.RemoveAll(scaffold)

	docPath := filepath.Join(scaffold, "index.html")
	if err := os.WriteFile(docPath, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write export scaffold: %w", err)
	}

	pdf, err := s.raster.PrintToPDF(ctx, "file://"+docPath, infrastructure.PrintOptions{
		MarginMM:    exportMarginMM,
		Scale:       exportScale,
		PageNumbers: true,
	})
	if err != nil {
		return "", fmt.Errorf("pdf generation failed: %w", err)
	}

	if s.outDir != "" {
		if err := os.MkdirAll(s.outDir, 0o755); err != nil {
			return "", err
		}
	}
	outPath := filepath.Join(s.outDir, NormalizeFilename(filename))
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return "", fmt.Errorf("save pdf: %w", err)
	}
	slog.Info("exported resume", "template", string(kind), "file", outPath, "bytes", len(pdf))
	return outPath, nil
}

// NormalizeFilename trims the requested name and appends the .pdf suffix
// when absent.
func NormalizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Resume_CV"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return name
}

// DefaultFilename derives the export name from the record.
func (s *Studio) DefaultFilename() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := s.record.PersonalInfo.FullName
	if name == "" {
		name = "Resume"
	}
	return name + "_CV"
}
