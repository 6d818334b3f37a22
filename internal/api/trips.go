package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/prtljaga/internal/model"
	"github.com/erazemk/prtljaga/internal/store"
)

// TripsHandler handles trip endpoints.
type TripsHandler struct {
	DB *sql.DB
}

type createTripRequest struct {
	Title        string `json:"title"`
	Destination  string `json:"destination"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Type         string `json:"type"`
	CoverImageID string `json:"cover_image_id"`
	TemplateID   string `json:"template_id"`
}

// List handles GET /api/trips. Anonymous callers get an empty list.
func (h *TripsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonResponse(w, http.StatusOK, []model.TripWithProgress{})
		return
	}

	trips, err := store.ListTrips(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list trips")
		return
	}
	if trips == nil {
		trips = []model.TripWithProgress{}
	}
	jsonResponse(w, http.StatusOK, trips)
}

// Get handles GET /api/trips/{id}. The read is not ownership-filtered: any
// caller who knows the id gets the trip with its progress counts.
func (h *TripsHandler) Get(w http.ResponseWriter, r *http.Request) {
	trip, err := store.GetTrip(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get trip")
		return
	}
	if trip == nil {
		jsonError(w, http.StatusNotFound, "trip not found")
		return
	}
	jsonResponse(w, http.StatusOK, trip)
}

// Create handles POST /api/trips.
func (h *TripsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req createTripRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" {
		jsonError(w, http.StatusBadRequest, "title required")
		return
	}
	if !model.ValidTripType(req.Type) {
		jsonError(w, http.StatusBadRequest, "type must be 'travel' or 'moving'")
		return
	}

	trip, err := store.CreateTrip(r.Context(), h.DB, &model.Trip{
		UserID:       claims.UserID,
		Title:        req.Title,
		Destination:  req.Destination,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Type:         req.Type,
		CoverImageID: req.CoverImageID,
		TemplateID:   req.TemplateID,
	})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create trip")
		return
	}

	jsonResponse(w, http.StatusCreated, trip)
}

// Update handles PUT /api/trips/{id}. Only fields present in the body are
// changed.
func (h *TripsHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id := r.PathValue("id")

	if err := store.AuthorizeTrip(r.Context(), h.DB, id, claims.UserID); err != nil {
		guardError(w, err)
		return
	}

	var patch model.TripPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if patch.Type != nil && !model.ValidTripType(*patch.Type) {
		jsonError(w, http.StatusBadRequest, "type must be 'travel' or 'moving'")
		return
	}

	if err := store.UpdateTrip(r.Context(), h.DB, id, patch); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update trip")
		return
	}

	trip, _ := store.GetTrip(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, trip)
}

// Delete handles DELETE /api/trips/{id}. Everything under the trip is
// removed with it.
func (h *TripsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id := r.PathValue("id")

	if err := store.AuthorizeTrip(r.Context(), h.DB, id, claims.UserID); err != nil {
		guardError(w, err)
		return
	}

	if err := store.DeleteTrip(r.Context(), h.DB, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete trip")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "trip deleted"})
}
