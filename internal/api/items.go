package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/mvidmar/itemsvc/internal/imaging"
	"github.com/mvidmar/itemsvc/internal/model"
	"github.com/mvidmar/itemsvc/internal/store"
)

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	DB        *sql.DB
	PageLimit int
}

// itemID parses the {id} path segment.
func itemID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// List handles GET /items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	skip := 0
	limit := h.PageLimit

	query := r.URL.Query()
	if v := query.Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			jsonDetail(w, http.StatusBadRequest, "skip must be a non-negative integer")
			return
		}
		skip = n
	}
	if v := query.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			jsonDetail(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	items, err := store.ListItems(r.Context(), h.DB, skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name, errs := req.validate()
	if len(errs) > 0 {
		jsonDetail(w, http.StatusUnprocessableEntity, errs)
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		jsonDetail(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		jsonDetail(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch, errs := req.validate()
	if len(errs) > 0 {
		jsonDetail(w, http.StatusUnprocessableEntity, errs)
		return
	}

	item, err := store.UpdateItem(r.Context(), h.DB, id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		jsonDetail(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := store.DeleteItem(r.Context(), h.DB, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadImage handles PUT /items/{id}/image. The body is the raw image
// bytes; the format is sniffed, not taken from headers.
func (h *ItemsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		jsonDetail(w, http.StatusBadRequest, "invalid item id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadBytes)
	defer r.Body.Close()

	result, err := imaging.Process(r.Body)
	if err != nil {
		jsonDetail(w, http.StatusUnprocessableEntity, []fieldError{
			{Field: "image", Message: err.Error()},
		})
		return
	}

	if err := store.SetItemImage(r.Context(), h.DB, id, result.Data, result.MIME); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetImage handles GET /items/{id}/image.
func (h *ItemsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		jsonDetail(w, http.StatusBadRequest, "invalid item id")
		return
	}

	data, mime, err := store.GetItemImage(r.Context(), h.DB, id)
	if err != nil {
		writeError(w, err)
		return
	}
	if data == nil {
		jsonDetail(w, http.StatusNotFound, "Image not found")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Write(data)
}
