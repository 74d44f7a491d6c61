package api

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mvidmar/itemsvc/internal/store"
)

// Field constraints, matching the column contract.
const (
	maxNameLength        = 255
	maxDescriptionLength = 2000
)

// fieldError is one constraint violation in a 422 response.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// createItemRequest is the POST /items payload.
type createItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// validate returns the trimmed name and any field violations.
func (r *createItemRequest) validate() (string, []fieldError) {
	var errs []fieldError

	var name string
	if r.Name == nil {
		errs = append(errs, fieldError{Field: "name", Message: "field is required"})
	} else {
		name = strings.TrimSpace(*r.Name)
		if n := utf8.RuneCountInString(name); n < 1 || n > maxNameLength {
			errs = append(errs, fieldError{
				Field:   "name",
				Message: fmt.Sprintf("must be between 1 and %d characters", maxNameLength),
			})
		}
	}

	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxDescriptionLength {
		errs = append(errs, fieldError{
			Field:   "description",
			Message: fmt.Sprintf("must be at most %d characters", maxDescriptionLength),
		})
	}

	return name, errs
}

// updateItemRequest is the PUT /items/{id} payload. Fields are raw so
// that an absent field stays distinguishable from an explicit null.
type updateItemRequest struct {
	Name        json.RawMessage `json:"name"`
	Description json.RawMessage `json:"description"`
}

// validate converts the request into a store patch. Absent fields leave
// the patch fields nil. Only description may be explicitly nulled.
func (r *updateItemRequest) validate() (store.ItemPatch, []fieldError) {
	var patch store.ItemPatch
	var errs []fieldError

	if len(r.Name) > 0 {
		var name *string
		switch err := json.Unmarshal(r.Name, &name); {
		case err != nil:
			errs = append(errs, fieldError{Field: "name", Message: "must be a string"})
		case name == nil:
			errs = append(errs, fieldError{Field: "name", Message: "must not be null"})
		default:
			trimmed := strings.TrimSpace(*name)
			if n := utf8.RuneCountInString(trimmed); n < 1 || n > maxNameLength {
				errs = append(errs, fieldError{
					Field:   "name",
					Message: fmt.Sprintf("must be between 1 and %d characters", maxNameLength),
				})
			} else {
				patch.Name = &trimmed
			}
		}
	}

	if len(r.Description) > 0 {
		var description *string
		switch err := json.Unmarshal(r.Description, &description); {
		case err != nil:
			errs = append(errs, fieldError{Field: "description", Message: "must be a string or null"})
		case description == nil:
			patch.Description = &sql.NullString{}
		case utf8.RuneCountInString(*description) > maxDescriptionLength:
			errs = append(errs, fieldError{
				Field:   "description",
				Message: fmt.Sprintf("must be at most %d characters", maxDescriptionLength),
			})
		default:
			patch.Description = &sql.NullString{String: *description, Valid: true}
		}
	}

	return patch, errs
}
