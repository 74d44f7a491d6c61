package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/mvidmar/itemsvc/internal/store"
)

// writeError translates a store error into a client-facing response.
// Anything that is not a recognized domain error becomes an opaque 500;
// internals are logged, never returned.
func writeError(w http.ResponseWriter, err error) {
	var notFound *store.NotFoundError
	if errors.As(err, &notFound) {
		jsonDetail(w, http.StatusNotFound, notFound.Error())
		return
	}

	var badRequest *store.BadRequestError
	if errors.As(err, &badRequest) {
		jsonDetail(w, http.StatusBadRequest, badRequest.Error())
		return
	}

	log.Error().Err(err).Msg("unhandled error")
	jsonDetail(w, http.StatusInternalServerError, "Internal server error")
}
