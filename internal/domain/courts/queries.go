package courts

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CourtQuery carries the filter, ordering and pagination parameters for
// court list requests.
type CourtQuery struct {
	Jurisdiction string `validate:"omitempty,oneof=F FD FS S SA ST T"`
	InUse        *bool
	FullName     string `validate:"omitempty,max=200"`
	Limit        int    `validate:"min=0,max=500"`
	Offset       int    `validate:"min=0"`
	SortBy       string `validate:"omitempty,oneof=date_modified position start_date end_date"`
	SortOrder    string `validate:"omitempty,oneof=asc desc"`
}

// NewCourtQuery creates a CourtQuery with default pagination values.
func NewCourtQuery() *CourtQuery {
	return &CourtQuery{
		Limit:  50,
		Offset: 0,
	}
}

// Validate for validating CourtQuery struct
func (q *CourtQuery) Validate() error {
	return validateQueryStruct(q)
}

// OriginatingCourtInfoQuery carries pagination parameters for originating
// court info list requests. The original endpoint exposes no filter class.
type OriginatingCourtInfoQuery struct {
	DocketNumber string `validate:"omitempty,max=100"`
	Limit        int    `validate:"min=0,max=500"`
	Offset       int    `validate:"min=0"`
	SortBy       string `validate:"omitempty,oneof=date_created date_modified"`
	SortOrder    string `validate:"omitempty,oneof=asc desc"`
}

// NewOriginatingCourtInfoQuery creates a query with default pagination values.
func NewOriginatingCourtInfoQuery() *OriginatingCourtInfoQuery {
	return &OriginatingCourtInfoQuery{
		Limit:  50,
		Offset: 0,
	}
}

// Validate for validating OriginatingCourtInfoQuery struct
func (q *OriginatingCourtInfoQuery) Validate() error {
	return validateQueryStruct(q)
}

func validateQueryStruct(q interface{}) error {
	validate := validator.New()

	err := validate.Struct(q)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
