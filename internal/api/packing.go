package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/prtljaga/internal/model"
	"github.com/erazemk/prtljaga/internal/store"
)

// PackingHandler handles packing category, item and assignment endpoints.
type PackingHandler struct {
	DB *sql.DB
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

type createItemRequest struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes"`
}

type assignRequest struct {
	BagID string `json:"bag_id"`
}

// ListCategories handles GET /api/trips/{id}/categories. Guarded read:
// anonymous callers and non-owners get an empty list, never an error.
func (h *PackingHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	tripID := r.PathValue("id")

	if claims == nil || store.AuthorizeTrip(r.Context(), h.DB, tripID, claims.UserID) != nil {
		jsonResponse(w, http.StatusOK, []model.CategoryWithItems{})
		return
	}

	categories, err := store.ListCategoriesWithItems(r.Context(), h.DB, tripID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	if categories == nil {
		categories = []model.CategoryWithItems{}
	}
	jsonResponse(w, http.StatusOK, categories)
}

// CreateCategory handles POST /api/trips/{id}/categories.
func (h *PackingHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	tripID := r.PathValue("id")

	if err := store.AuthorizeTrip(r.Context(), h.DB, tripID, claims.UserID); err != nil {
		guardError(w, err)
		return
	}

	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	category, err := store.CreateCategory(r.Context(), h.DB, tripID, req.Name)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create category")
		return
	}

	jsonResponse(w, http.StatusCreated, category)
}

// CreateItem handles POST /api/trips/{id}/items.
func (h *PackingHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	tripID := r.PathValue("id")

	if err := store.AuthorizeTrip(r.Context(), h.DB, tripID, claims.UserID); err != nil {
		guardError(w, err)
		return
	}

	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.CategoryID == "" {
		jsonError(w, http.StatusBadRequest, "name and category_id required")
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, &model.PackingItem{
		TripID:     tripID,
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Quantity:   req.Quantity,
		Notes:      req.Notes,
	})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// UpdateItem handles PUT /api/items/{id}. Only fields present in the body
// are changed.
func (h *PackingHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id := r.PathValue("id")

	if err := store.AuthorizeItem(r.Context(), h.DB, id, claims.UserID); err != nil {
		guardError(w, err)
		return
	}

	var patch model.ItemPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if patch.Quantity != nil && *patch.Quantity < 1 {
		jsonError(w, http.StatusBadRequest, "quantity must be at least 1")
		return
	}

	if err := store.UpdateItem(r.Context(), h.DB, id, patch); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	item, _ := store.GetItem(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, item)
}

// TogglePacked handles POST /api/items/{id}/toggle.
func (h *PackingHandler) TogglePacked(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id := r.PathValue("id")

	if err := store.AuthorizeItem(r.Context(), h.DB, id, claims.UserID); err != nil {
		guardError(w, err)
		return
	}

	if err := store.TogglePacked(r.Context(), h.DB, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to toggle item")
		return
	}

	item, _ := store.GetItem(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /api/items/{id}.
func (h *PackingHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id := r.PathValue("id")

	if err := store.AuthorizeItem(r.Context(), h.DB, id, claims.UserID); err != nil {
		guardError(w, err)
		return
	}

	if err := store.DeleteItem(r.Context(), h.DB, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// AssignToBag handles POST /api/items/{id}/bags. Assigning an already
// assigned pair returns the existing assignment.
func (h *PackingHandler) AssignToBag(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	itemID := r.PathValue("id")

	if err := store.AuthorizeItem(r.Context(), h.DB, itemID, claims.UserID); err != nil {
		guardError(w, err)
		return
	}

	var req assignRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.BagID == "" {
		jsonError(w, http.StatusBadRequest, "bag_id required")
		return
	}

	bag, err := store.GetBag(r.Context(), h.DB, req.BagID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to assign item")
		return
	}
	if bag == nil {
		jsonError(w, http.StatusNotFound, "bag not found")
		return
	}

	assignmentID, err := store.AssignToBag(r.Context(), h.DB, itemID, req.BagID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to assign item")
		return
	}

	jsonResponse(w, http.StatusOK, model.ItemBagAssignment{
		ID:     assignmentID,
		ItemID: itemID,
		BagID:  req.BagID,
	})
}

// UnassignFromBag handles DELETE /api/items/{id}/bags/{bagId}. Removing an
// absent assignment succeeds quietly.
func (h *PackingHandler) UnassignFromBag(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	itemID := r.PathValue("id")

	if err := store.AuthorizeItem(r.Context(), h.DB, itemID, claims.UserID); err != nil {
		guardError(w, err)
		return
	}

	if err := store.UnassignFromBag(r.Context(), h.DB, itemID, r.PathValue("bagId")); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to unassign item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "item unassigned"})
}

// ListAssignments handles GET /api/trips/{id}/assignments. Guarded read:
// anonymous callers and non-owners get an empty list.
func (h *PackingHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	tripID := r.PathValue("id")

	if claims == nil || store.AuthorizeTrip(r.Context(), h.DB, tripID, claims.UserID) != nil {
		jsonResponse(w, http.StatusOK, []model.ItemBagAssignment{})
		return
	}

	assignments, err := store.ListAssignmentsByTrip(r.Context(), h.DB, tripID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list assignments")
		return
	}
	if assignments == nil {
		assignments = []model.ItemBagAssignment{}
	}
	jsonResponse(w, http.StatusOK, assignments)
}
