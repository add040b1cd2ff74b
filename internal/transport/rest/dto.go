package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
)

// ---------------------------------------------------------------------------
// Inspection bodies
// ---------------------------------------------------------------------------

type contactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

type bodyRequest struct {
	Name         string              `json:"name"`
	Jurisdiction domain.Jurisdiction `json:"jurisdiction"`
	Competence   domain.Competence   `json:"competence"`
	Contact      contactRequest      `json:"contact"`
}

type contactPatchRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

type bodyPatchRequest struct {
	Name         *string              `json:"name"`
	Jurisdiction *domain.Jurisdiction `json:"jurisdiction"`
	Competence   *domain.Competence   `json:"competence"`
	Contact      *contactPatchRequest `json:"contact"`
}

type contactResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

type bodyResponse struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Jurisdiction     string          `json:"jurisdiction"`
	JurisdictionName string          `json:"jurisdiction_name"`
	Competence       string          `json:"competence"`
	CompetenceName   string          `json:"competence_name"`
	Contact          contactResponse `json:"contact"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func toBodyResponse(b *domain.InspectionBody) bodyResponse {
	return bodyResponse{
		ID:               b.ID,
		Name:             b.Name,
		Jurisdiction:     b.Jurisdiction.String(),
		JurisdictionName: b.Jurisdiction.DisplayName(),
		Competence:       b.Competence.String(),
		CompetenceName:   b.Competence.DisplayName(),
		Contact: contactResponse{
			FirstName: b.Contact.FirstName,
			LastName:  b.Contact.LastName,
			Phone:     b.Contact.Phone,
			Email:     b.Contact.Email,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toBodyResponses(bodies []domain.InspectionBody) []bodyResponse {
	out := make([]bodyResponse, len(bodies))
	for i := range bodies {
		out[i] = toBodyResponse(&bodies[i])
	}
	return out
}

// ---------------------------------------------------------------------------
// Products
// ---------------------------------------------------------------------------

type productRequest struct {
	Name         string         `json:"name"`
	Manufacturer string         `json:"manufacturer"`
	Country      domain.Country `json:"country"`
	Description  *string        `json:"description"`
}

type productPatchRequest struct {
	Name         *string         `json:"name"`
	Manufacturer *string         `json:"manufacturer"`
	Country      *domain.Country `json:"country"`
	Description  *string         `json:"description"`
}

type productResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Manufacturer string    `json:"manufacturer"`
	Country      string    `json:"country"`
	CountryName  string    `json:"country_name"`
	Description  *string   `json:"description"`
	SerialCode   *string   `json:"serial_code"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:           p.ID,
		Name:         p.Name,
		Manufacturer: p.Manufacturer,
		Country:      p.Country.String(),
		CountryName:  p.Country.DisplayName(),
		Description:  p.Description,
		SerialCode:   p.SerialCode,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i := range products {
		out[i] = toProductResponse(&products[i])
	}
	return out
}

// ---------------------------------------------------------------------------
// Inspections
// ---------------------------------------------------------------------------

// Dates travel as YYYY-MM-DD strings and are parsed by the handler so that a
// bad value is reported against its field.
type inspectionRequest struct {
	Date      *string   `json:"date"`
	BodyID    uuid.UUID `json:"body_id"`
	ProductID uuid.UUID `json:"product_id"`
	Results   *string   `json:"results"`
	Safe      *bool     `json:"safe"`
}

type inspectionPatchRequest struct {
	Date      *string    `json:"date"`
	BodyID    *uuid.UUID `json:"body_id"`
	ProductID *uuid.UUID `json:"product_id"`
	Results   *string    `json:"results"`
	Safe      *bool      `json:"safe"`
}

type inspectionResponse struct {
	ID        uuid.UUID        `json:"id"`
	Date      string           `json:"date"`
	BodyID    uuid.UUID        `json:"body_id"`
	ProductID uuid.UUID        `json:"product_id"`
	Body      *bodyResponse    `json:"body,omitempty"`
	Product   *productResponse `json:"product,omitempty"`
	Results   *string          `json:"results"`
	Safe      bool             `json:"safe"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func toInspectionResponse(in *domain.Inspection) inspectionResponse {
	resp := inspectionResponse{
		ID:        in.ID,
		Date:      domain.FormatDate(in.Date),
		BodyID:    in.BodyID,
		ProductID: in.ProductID,
		Results:   in.Results,
		Safe:      in.Safe,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
	if in.Body != nil {
		b := toBodyResponse(in.Body)
		resp.Body = &b
	}
	if in.Product != nil {
		p := toProductResponse(in.Product)
		resp.Product = &p
	}
	return resp
}

func toInspectionResponses(inspections []domain.Inspection) []inspectionResponse {
	out := make([]inspectionResponse, len(inspections))
	for i := range inspections {
		out[i] = toInspectionResponse(&inspections[i])
	}
	return out
}

type statsResponse struct {
	Total  int `json:"total"`
	Safe   int `json:"safe"`
	Unsafe int `json:"unsafe"`
}

func toStatsResponse(s domain.InspectionStats) statsResponse {
	return statsResponse{Total: s.Total, Safe: s.Safe, Unsafe: s.Unsafe}
}

// batchRequest wraps the items of a bulk create.
type batchRequest[T any] struct {
	Items []T `json:"items"`
}
