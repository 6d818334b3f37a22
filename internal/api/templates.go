package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/prtljaga/internal/model"
	"github.com/erazemk/prtljaga/internal/store"
)

// TemplatesHandler handles template endpoints. Templates are read-only;
// the only write is copying one onto a trip.
type TemplatesHandler struct {
	DB *sql.DB
}

type applyTemplateRequest struct {
	TemplateID string `json:"template_id"`
}

// List handles GET /api/templates.
func (h *TemplatesHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := store.ListTemplates(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list templates")
		return
	}
	if templates == nil {
		templates = []model.Template{}
	}
	jsonResponse(w, http.StatusOK, templates)
}

// Get handles GET /api/templates/{id}.
func (h *TemplatesHandler) Get(w http.ResponseWriter, r *http.Request) {
	template, err := store.GetTemplate(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get template")
		return
	}
	if template == nil {
		jsonError(w, http.StatusNotFound, "template not found")
		return
	}
	jsonResponse(w, http.StatusOK, template)
}

// ApplyToTrip handles POST /api/trips/{id}/template: a one-way copy of the
// template's categories and items onto the trip.
func (h *TemplatesHandler) ApplyToTrip(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	tripID := r.PathValue("id")

	if err := store.AuthorizeTrip(r.Context(), h.DB, tripID, claims.UserID); err != nil {
		guardError(w, err)
		return
	}

	var req applyTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TemplateID == "" {
		jsonError(w, http.StatusBadRequest, "template_id required")
		return
	}

	template, err := store.GetTemplate(r.Context(), h.DB, req.TemplateID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to apply template")
		return
	}
	if template == nil {
		jsonError(w, http.StatusNotFound, "template not found")
		return
	}

	if err := store.ApplyTemplateToTrip(r.Context(), h.DB, tripID, req.TemplateID); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to apply template")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "template applied"})
}
