package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/inspection-registry/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "inspector-" + suffix + "@example.ba",
		Username:     "inspector-" + suffix,
		PasswordHash: "$2a$10$placeholderplaceholderplaceholderplaceholderpl",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedBody inserts an inspection body with a unique name.
func SeedBody(t *testing.T, pool *pgxpool.Pool) domain.InspectionBody {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	body := domain.InspectionBody{
		ID:           uuid.New(),
		Name:         "Inspektorat " + suffix,
		Jurisdiction: domain.JurisdictionFBiH,
		Competence:   domain.CompetenceMarket,
		Contact: domain.Contact{
			FirstName: "Amra",
			LastName:  "Hodžić",
			Phone:     "+38761123456",
			Email:     "amra-" + suffix + "@inspektorat.ba",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO inspection_bodies
		   (id, name, jurisdiction, competence, contact_first_name, contact_last_name,
		    contact_phone, contact_email, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		body.ID, body.Name, string(body.Jurisdiction), string(body.Competence),
		body.Contact.FirstName, body.Contact.LastName, body.Contact.Phone, body.Contact.Email,
		body.CreatedAt, body.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBody: %v", err)
	}

	return body
}

// SeedProduct inserts a product whose serial code is unique per call.
func SeedProduct(t *testing.T, pool *pgxpool.Pool) domain.Product {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	serial := "Maker_" + suffix + "_0000000001"
	product := domain.Product{
		ID:           uuid.New(),
		Name:         suffix,
		Manufacturer: "Maker",
		Country:      domain.CountryBosniaAndHerzegovina,
		SerialCode:   &serial,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO products (id, name, manufacturer, country, serial_code, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		product.ID, product.Name, product.Manufacturer, string(product.Country),
		product.SerialCode, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct: %v", err)
	}

	return product
}
