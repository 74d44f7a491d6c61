package api

import (
	"database/sql"
	"net/http"

	"github.com/mvidmar/itemsvc/internal/config"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, cfg config.Config) http.Handler {
	mux := http.NewServeMux()

	items := &ItemsHandler{DB: db, PageLimit: cfg.PageLimit}

	// Health check.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"app":     cfg.AppName,
			"version": cfg.Version,
		})
	})

	// Items.
	mux.HandleFunc("POST /items", items.Create)
	mux.HandleFunc("GET /items", items.List)
	mux.HandleFunc("GET /items/{id}", items.Get)
	mux.HandleFunc("PUT /items/{id}", items.Update)
	mux.HandleFunc("DELETE /items/{id}", items.Delete)
	mux.HandleFunc("PUT /items/{id}/image", items.UploadImage)
	mux.HandleFunc("GET /items/{id}/image", items.GetImage)

	return mux
}
