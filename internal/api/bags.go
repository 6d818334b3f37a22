package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/prtljaga/internal/model"
	"github.com/erazemk/prtljaga/internal/store"
)

// BagsHandler handles bag endpoints.
type BagsHandler struct {
	DB *sql.DB
}

type createBagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// ListByTrip handles GET /api/trips/{id}/bags. Like the trip detail read,
// this is not ownership-filtered.
func (h *BagsHandler) ListByTrip(w http.ResponseWriter, r *http.Request) {
	bags, err := store.ListBagsByTrip(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list bags")
		return
	}
	if bags == nil {
		bags = []model.Bag{}
	}
	jsonResponse(w, http.StatusOK, bags)
}

// Create handles POST /api/trips/{id}/bags.
func (h *BagsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	tripID := r.PathValue("id")

	if err := store.AuthorizeTrip(r.Context(), h.DB, tripID, claims.UserID); err != nil {
		guardError(w, err)
		return
	}

	var req createBagRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	bag, err := store.CreateBag(r.Context(), h.DB, tripID, req.Name, req.Color, req.Icon)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create bag")
		return
	}

	jsonResponse(w, http.StatusCreated, bag)
}

// Update handles PUT /api/bags/{id}. Only fields present in the body are
// changed.
func (h *BagsHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id := r.PathValue("id")

	if err := store.AuthorizeBag(r.Context(), h.DB, id, claims.UserID); err != nil {
		guardError(w, err)
		return
	}

	var patch model.BagPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := store.UpdateBag(r.Context(), h.DB, id, patch); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update bag")
		return
	}

	bag, _ := store.GetBag(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, bag)
}

// Delete handles DELETE /api/bags/{id}. The bag's assignments go with it.
func (h *BagsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id := r.PathValue("id")

	if err := store.AuthorizeBag(r.Context(), h.DB, id, claims.UserID); err != nil {
		guardError(w, err)
		return
	}

	if err := store.DeleteBag(r.Context(), h.DB, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete bag")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "bag deleted"})
}
