package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"seoscope/internal/config"
	"seoscope/internal/models"
	"seoscope/internal/store"
	"seoscope/internal/validation"
)

// ProjectHandler handles tracked project CRUD from the dashboard.
type ProjectHandler struct {
	store *store.Store
	cfg   *config.Config
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(st *store.Store, cfg *config.Config) *ProjectHandler {
	return &ProjectHandler{store: st, cfg: cfg}
}

// Create saves a new tracked project from the dashboard form.
func (h *ProjectHandler) Create(c fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	rawURL := strings.TrimSpace(c.FormValue("url"))
	keywords := splitKeywords(c.FormValue("keywords"))

	if name == "" {
		return htmxError(c, "project name is required")
	}
	if valid, msg := validation.ValidateURL(rawURL); !valid {
		return htmxError(c, msg)
	}

	project := &models.Project{
		Name:           name,
		URL:            rawURL,
		TargetKeywords: keywords,
	}
	if err := h.store.SaveProject(c.Context(), project); err != nil {
		return htmxError(c, "failed to save project")
	}

	c.Set("HX-Redirect", "/")
	return c.Redirect().To("/")
}

// Delete removes a tracked project.
func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	if err := h.store.DeleteProject(c.Context(), c.Params("id")); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete project")
	}
	return c.SendString("")
}
