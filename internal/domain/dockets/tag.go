package dockets

import "time"

// Tag entity. Tags label dockets, docket entries and case documents.
type Tag struct {
	ID           string    `validate:"required,uuid4"`
	Name         string    `validate:"required,min=1,max=50"`
	DateCreated  time.Time `validate:"required"`
	DateModified time.Time `validate:"required"`
}

// Validate for validating Tag struct
func (t *Tag) Validate() error {
	return validateStruct(t)
}
