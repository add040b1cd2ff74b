package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contact is the responsible person of an inspection body.
type Contact struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

// InspectionBody is an authorized organization performing inspections.
type InspectionBody struct {
	ID           uuid.UUID
	Name         string
	Jurisdiction Jurisdiction
	Competence   Competence
	Contact      Contact
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Product is an item subject to inspection.
// SerialCode is nil when manufacturer or name yields an empty slug.
type Product struct {
	ID           uuid.UUID
	Name         string
	Manufacturer string
	Country      Country
	Description  *string
	SerialCode   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Inspection is a single inspection event of a product by a body.
// Body and Product are populated when the references have been resolved.
type Inspection struct {
	ID        uuid.UUID
	Date      time.Time
	BodyID    uuid.UUID
	ProductID uuid.UUID
	Results   *string
	Safe      bool
	CreatedAt time.Time
	UpdatedAt time.Time

	Body    *InspectionBody
	Product *Product
}

// InspectionBodyUpdateParams carries the columns to overwrite; nil means unchanged.
type InspectionBodyUpdateParams struct {
	Name         *string
	Jurisdiction *Jurisdiction
	Competence   *Competence
	FirstName    *string
	LastName     *string
	Phone        *string
	Email        *string
}

// ProductUpdateParams carries the columns to overwrite; nil means unchanged.
// ClearDescription sets the description to NULL.
type ProductUpdateParams struct {
	Name             *string
	Manufacturer     *string
	Country          *Country
	Description      *string
	ClearDescription bool
	SerialCode       *string
	ClearSerialCode  bool
}

// InspectionUpdateParams carries the columns to overwrite; nil means unchanged.
type InspectionUpdateParams struct {
	Date         *time.Time
	BodyID       *uuid.UUID
	ProductID    *uuid.UUID
	Results      *string
	ClearResults bool
	Safe         *bool
}

// InspectionStats summarizes verdicts over a set of inspections.
type InspectionStats struct {
	Total  int
	Safe   int
	Unsafe int
}
