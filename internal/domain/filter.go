package domain

import (
	"time"

	"github.com/google/uuid"
)

// InspectionSort selects the ordering of inspection listings.
type InspectionSort string

const (
	// InspectionSortCreated orders by insertion time (created_at ASC, id ASC).
	InspectionSortCreated InspectionSort = ""
	// InspectionSortNewest orders by inspection date, most recent first (id ASC on ties).
	InspectionSortNewest InspectionSort = "newest"
)

func (s InspectionSort) IsValid() bool {
	return s == InspectionSortCreated || s == InspectionSortNewest
}

// InspectionFilter is a conjunction of optional criteria. Nil fields impose nothing.
// From and To are inclusive.
type InspectionFilter struct {
	Date      *time.Time
	From      *time.Time
	To        *time.Time
	BodyID    *uuid.UUID
	ProductID *uuid.UUID
	Safe      *bool
	Sort      InspectionSort
}

// Validate rejects a period whose start lies after its end.
func (f InspectionFilter) Validate() error {
	if f.From != nil && f.To != nil && CalendarDate(*f.From).After(CalendarDate(*f.To)) {
		return &RangeError{From: FormatDate(*f.From), To: FormatDate(*f.To)}
	}
	if !f.Sort.IsValid() {
		return NewValidationError("sort", "unknown sort order")
	}
	return nil
}

// BodyFilter narrows inspection body listings. String matches on
// NameContains are case-insensitive substrings; the rest are exact.
type BodyFilter struct {
	Jurisdiction *Jurisdiction
	Competence   *Competence
	NameContains *string
	Email        *string
	Phone        *string
	FirstName    *string
	LastName     *string
	SortByName   bool
}

// ProductFilter narrows product listings. *Contains fields are
// case-insensitive substring matches.
type ProductFilter struct {
	Manufacturer         *string
	Country              *Country
	NameContains         *string
	ManufacturerContains *string
	SortByName           bool
}
