package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Error().Err(err).Msg("encoding response")
		}
	}
}

// jsonDetail writes the standard error body {"detail": ...}. The detail
// is a string for plain errors and a list of field violations for
// validation failures.
func jsonDetail(w http.ResponseWriter, status int, detail any) {
	jsonResponse(w, status, map[string]any{"detail": detail})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
