package store

import "fmt"

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Resource string
	ID       int64
	HasID    bool
}

func (e *NotFoundError) Error() string {
	if e.HasID {
		return fmt.Sprintf("%s with id '%d' not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// BadRequestError reports a semantic violation that field validation
// does not catch.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }

// itemNotFound is shorthand for the id-qualified item variant.
func itemNotFound(id int64) *NotFoundError {
	return &NotFoundError{Resource: "Item", ID: id, HasID: true}
}
