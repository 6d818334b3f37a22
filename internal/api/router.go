package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	tripsHandler := &TripsHandler{DB: db}
	packingHandler := &PackingHandler{DB: db}
	bagsHandler := &BagsHandler{DB: db}
	templatesHandler := &TemplatesHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)
	optionalMW := OptionalAuthMiddleware(jwtSecret, db)

	// Public: account creation and login.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Session management.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))

	// Trips. Reads tolerate anonymous callers, writes require the owner.
	mux.Handle("GET /api/trips", optionalMW(http.HandlerFunc(tripsHandler.List)))
	mux.Handle("POST /api/trips", authMW(http.HandlerFunc(tripsHandler.Create)))
	mux.Handle("GET /api/trips/{id}", optionalMW(http.HandlerFunc(tripsHandler.Get)))
	mux.Handle("PUT /api/trips/{id}", authMW(http.HandlerFunc(tripsHandler.Update)))
	mux.Handle("DELETE /api/trips/{id}", authMW(http.HandlerFunc(tripsHandler.Delete)))

	// Packing categories, items, and bag assignments.
	mux.Handle("GET /api/trips/{id}/categories", optionalMW(http.HandlerFunc(packingHandler.ListCategories)))
	mux.Handle("POST /api/trips/{id}/categories", authMW(http.HandlerFunc(packingHandler.CreateCategory)))
	mux.Handle("POST /api/trips/{id}/items", authMW(http.HandlerFunc(packingHandler.CreateItem)))
	mux.Handle("PUT /api/items/{id}", authMW(http.HandlerFunc(packingHandler.UpdateItem)))
	mux.Handle("POST /api/items/{id}/toggle", authMW(http.HandlerFunc(packingHandler.TogglePacked)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(packingHandler.DeleteItem)))
	mux.Handle("POST /api/items/{id}/bags", authMW(http.HandlerFunc(packingHandler.AssignToBag)))
	mux.Handle("DELETE /api/items/{id}/bags/{bagId}", authMW(http.HandlerFunc(packingHandler.UnassignFromBag)))
	mux.Handle("GET /api/trips/{id}/assignments", optionalMW(http.HandlerFunc(packingHandler.ListAssignments)))

	// Bags.
	mux.Handle("GET /api/trips/{id}/bags", optionalMW(http.HandlerFunc(bagsHandler.ListByTrip)))
	mux.Handle("POST /api/trips/{id}/bags", authMW(http.HandlerFunc(bagsHandler.Create)))
	mux.Handle("PUT /api/bags/{id}", authMW(http.HandlerFunc(bagsHandler.Update)))
	mux.Handle("DELETE /api/bags/{id}", authMW(http.HandlerFunc(bagsHandler.Delete)))

	// Templates (read-only catalog plus apply-to-trip).
	mux.Handle("GET /api/templates", optionalMW(http.HandlerFunc(templatesHandler.List)))
	mux.Handle("GET /api/templates/{id}", optionalMW(http.HandlerFunc(templatesHandler.Get)))
	mux.Handle("POST /api/trips/{id}/template", authMW(http.HandlerFunc(templatesHandler.ApplyToTrip)))

	return mux
}
