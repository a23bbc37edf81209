// Package http exposes the editing session over a local fiber API: record
// CRUD for the form editor, HTML preview, PDF export, project save/load and
// the AI-assisted flows.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
)

type Handler struct {
	studio *usecase.Studio
}

func NewHandler(s *usecase.Studio) *Handler {
	return &Handler{studio: s}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/resume", h.getResume)
	app.Put("/resume/personal", h.putPersonal)
	app.Put("/resume/summary", h.putSummary)
	app.Put("/resume/skills", h.putSkills)

	app.Post("/resume/experience", h.addExperience)
	app.Put("/resume/experience/:id", h.putExperience)
	app.Delete("/resume/experience/:id", h.deleteExperience)

	app.Post("/resume/education", h.addEducation)
	app.Put("/resume/education/:id", h.putEducation)
	app.Delete("/resume/education/:id", h.deleteEducation)

	app.Post("/resume/references", h.addReference)
	app.Put("/resume/references/:id", h.putReference)
	app.Delete("/resume/references/:id", h.deleteReference)

	app.Get("/preview", h.preview)
	app.Post("/export", h.export)

	app.Get("/project", h.downloadProject)
	app.Post("/project", h.uploadProject)

	app.Post("/ai/experience/:id/enhance", h.enhanceExperience)
	app.Post("/ai/summary", h.generateSummary)
	app.Post("/ai/parse", h.parseFreeText)
	app.Post("/ai/tailor", h.tailor)

	app.Post("/mailto", h.mailto)
}

func (h *Handler) getResume(c *fiber.Ctx) error {
	return c.JSON(h.studio.Record())
}

func (h *Handler) putPersonal(c *fiber.Ctx) error {
	var p model.PersonalInfo
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.studio.SetPersonalInfo(p)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) putSummary(c *fiber.Ctx) error {
	var req struct {
		Summary string `json:"summary"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.studio.SetSummary(req.Summary)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) putSkills(c *fiber.Ctx) error {
	var req struct {
		Skills []string `json:"skills"`
		CSV    string   `json:"csv"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if req.CSV != "" {
		req.Skills = usecase.SplitSkills(req.CSV)
	}
	h.studio.SetSkills(req.Skills)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) addExperience(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.studio.AddExperience())
}

func (h *Handler) putExperience(c *fiber.Ctx) error {
	var e model.ExperienceEntry
	if err := c.BodyParser(&e); err != nil {
		return badRequest(c, "invalid payload")
	}
	e.ID = c.Params("id")
	return h.done(c, h.studio.UpdateExperience(e))
}

func (h *Handler) deleteExperience(c *fiber.Ctx) error {
	return h.done(c, h.studio.RemoveExperience(c.Params("id")))
}

func (h *Handler) addEducation(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.studio.AddEducation())
}

func (h *Handler) putEducation(c *fiber.Ctx) error {
	var e model.EducationEntry
	if err := c.BodyParser(&e); err != nil {
		return badRequest(c, "invalid payload")
	}
	e.ID = c.Params("id")
	return h.done(c, h.studio.UpdateEducation(e))
}

func (h *Handler) deleteEducation(c *fiber.Ctx) error {
	return h.done(c, h.studio.RemoveEducation(c.Params("id")))
}

func (h *Handler) addReference(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.studio.AddReference())
}

func (h *Handler) putReference(c *fiber.Ctx) error {
	var e model.ReferenceEntry
	if err := c.BodyParser(&e); err != nil {
		return badRequest(c, "invalid payload")
	}
	e.ID = c.Params("id")
	return h.done(c, h.studio.UpdateReference(e))
}

func (h *Handler) deleteReference(c *fiber.Ctx) error {
	return h.done(c, h.studio.RemoveReference(c.Params("id")))
}

func (h *Handler) preview(c *fiber.Ctx) error {
	kind, err := render.ParseTemplateKind(c.Query("template"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	html, err := h.studio.Preview(kind)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Type("html")
	return c.SendString(html)
}

func (h *Handler) export(c *fiber.Ctx) error {
	var req struct {
		Template string `json:"template"`
		Filename string `json:"filename"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	kind, err := render.ParseTemplateKind(req.Template)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if req.Filename == "" {
		req.Filename = h.studio.DefaultFilename()
	}
	path, err := h.studio.Export(c.Context(), kind, req.Filename)
	if err != nil {
		if errors.Is(err, usecase.ErrRasterizerUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "PDF generator is initializing. Please try again in a moment."})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"file": path})
}

func (h *Handler) downloadProject(c *fiber.Ctx) error {
	data, name, err := h.studio.SaveProject()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	c.Type("json")
	return c.Send(data)
}

func (h *Handler) uploadProject(c *fiber.Ctx) error {
	if err := h.studio.LoadProject(c.Body()); err != nil {
		return badRequest(c, err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) enhanceExperience(c *fiber.Ctx) error {
	err := h.studio.EnhanceExperience(c.Context(), c.Params("id"))
	return h.aiDone(c, err)
}

func (h *Handler) generateSummary(c *fiber.Ctx) error {
	return h.aiDone(c, h.studio.GenerateSummary(c.Context()))
}

func (h *Handler) parseFreeText(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	return h.aiDone(c, h.studio.ImportFromText(c.Context(), req.Text))
}

func (h *Handler) tailor(c *fiber.Ctx) error {
	var req struct {
		Resume         string `json:"resume"`
		LinkedIn       string `json:"linkedin"`
		JobDescription string `json:"jobDescription"`
		Location       string `json:"location"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	return h.aiDone(c, h.studio.Tailor(c.Context(), req.Resume, req.LinkedIn, req.JobDescription, req.Location))
}

func (h *Handler) mailto(c *fiber.Ctx) error {
	var req struct {
		To       string `json:"to"`
		Subject  string `json:"subject"`
		Body     string `json:"body"`
		Template string `json:"template"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	kind, err := render.ParseTemplateKind(req.Template)
	if err != nil {
		return badRequest(c, err.Error())
	}
	// The mail handoff always ships with a fresh export of the document so
	// the user has the file their email will need.
	path, err := h.studio.Export(c.Context(), kind, h.studio.DefaultFilename())
	if err != nil {
		if errors.Is(err, usecase.ErrRasterizerUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "PDF generator is initializing. Please try again in a moment."})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"file":   path,
		"link":   usecase.MailtoLink(req.To, req.Subject, req.Body),
		"notice": usecase.MailtoNotice,
	})
}

// done maps entry-addressed mutations to their status codes.
func (h *Handler) done(c *fiber.Ctx, err error) error {
	switch {
	case err == nil:
		return c.SendStatus(fiber.StatusNoContent)
	case errors.Is(err, usecase.ErrEntryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "entry not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// aiDone maps AI-flow outcomes. Failures never change the record; the
// response carries a transient notice for the editor to show.
func (h *Handler) aiDone(c *fiber.Ctx, err error) error {
	switch {
	case err == nil:
		return c.JSON(h.studio.Record())
	case errors.Is(err, usecase.ErrNoGenerator):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "AI assistance is not configured"})
	case errors.Is(err, usecase.ErrEntryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "entry not found"})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
