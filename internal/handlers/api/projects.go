package api

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"seoscope/internal/models"
	"seoscope/internal/store"
	"seoscope/internal/validation"
)

// ProjectHandler serves tracked project CRUD over JSON.
type ProjectHandler struct {
	store *store.Store
}

// NewProjectHandler creates a new API project handler.
func NewProjectHandler(st *store.Store) *ProjectHandler {
	return &ProjectHandler{store: st}
}

type projectRequest struct {
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	Keywords []string `json:"keywords"`
}

// List returns all tracked projects.
func (h *ProjectHandler) List(c fiber.Ctx) error {
	return jsonSuccess(c, h.store.GetProjects(c.Context()))
}

// Get returns one project by id.
func (h *ProjectHandler) Get(c fiber.Ctx) error {
	project, ok := h.store.GetProject(c.Context(), c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "project not found")
	}
	return jsonSuccess(c, project)
}

// Create saves a new tracked project.
func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return jsonError(c, fiber.StatusBadRequest, "name is required")
	}
	if valid, msg := validation.ValidateURL(req.URL); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	project := &models.Project{
		Name:           req.Name,
		URL:            req.URL,
		TargetKeywords: req.Keywords,
	}
	if err := h.store.SaveProject(c.Context(), project); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save project")
	}
	return jsonSuccess(c, project)
}

// Update modifies an existing project in place.
func (h *ProjectHandler) Update(c fiber.Ctx) error {
	project, ok := h.store.GetProject(c.Context(), c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "project not found")
	}

	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		project.Name = name
	}
	if req.URL != "" {
		if valid, msg := validation.ValidateURL(req.URL); !valid {
			return jsonError(c, fiber.StatusBadRequest, msg)
		}
		project.URL = req.URL
	}
	if req.Keywords != nil {
		project.TargetKeywords = req.Keywords
	}

	if err := h.store.SaveProject(c.Context(), &project); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save project")
	}
	return jsonSuccess(c, project)
}

// Delete removes a tracked project.
func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	if err := h.store.DeleteProject(c.Context(), c.Params("id")); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete project")
	}
	return jsonSuccess(c, fiber.Map{"deleted": c.Params("id")})
}
