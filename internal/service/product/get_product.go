package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
)

// GetByID returns a product by id.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	return s.products.GetByID(ctx, id)
}

// GetBySerial returns the product carrying serial.
func (s *Service) GetBySerial(ctx context.Context, serial string) (*domain.Product, error) {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return nil, domain.NewValidationError("serial_code", "required")
	}

	p, err := s.products.GetBySerial(ctx, serial)
	if err != nil {
		return nil, fmt.Errorf("get product by serial %q: %w", serial, err)
	}
	return p, nil
}

// List returns the products matching filter.
func (s *Service) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	return s.products.List(ctx, normalizeFilter(filter))
}

// ListSortedByName returns all products ordered by name.
func (s *Service) ListSortedByName(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx, domain.ProductFilter{SortByName: true})
}

// Count returns the number of products matching filter.
func (s *Service) Count(ctx context.Context, filter domain.ProductFilter) (int, error) {
	if err := validateFilter(filter); err != nil {
		return 0, err
	}
	return s.products.Count(ctx, normalizeFilter(filter))
}

// CountByManufacturer returns the number of products made by manufacturer.
func (s *Service) CountByManufacturer(ctx context.Context, manufacturer string) (int, error) {
	return s.Count(ctx, domain.ProductFilter{Manufacturer: &manufacturer})
}

// Countries lists the selectable countries of origin.
func (s *Service) Countries() []domain.Country {
	return domain.AllCountries()
}

func validateFilter(f domain.ProductFilter) error {
	if f.Country != nil && !f.Country.IsValid() {
		return domain.NewValidationError("country", "invalid value")
	}
	if f.Manufacturer != nil && strings.TrimSpace(*f.Manufacturer) == "" {
		return domain.NewValidationError("manufacturer", "required")
	}
	return nil
}

func normalizeFilter(f domain.ProductFilter) domain.ProductFilter {
	if f.Manufacturer != nil {
		f.Manufacturer = trimmed(*f.Manufacturer)
	}
	if f.NameContains != nil {
		f.NameContains = trimmed(*f.NameContains)
	}
	if f.ManufacturerContains != nil {
		f.ManufacturerContains = trimmed(*f.ManufacturerContains)
	}
	return f
}
