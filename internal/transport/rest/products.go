package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/internal/service/product"
)

type productService interface {
	Create(ctx context.Context, input product.CreateInput) (*domain.Product, error)
	CreateMany(ctx context.Context, inputs []product.CreateInput) ([]domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetBySerial(ctx context.Context, serial string) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	Count(ctx context.Context, filter domain.ProductFilter) (int, error)
	CountByManufacturer(ctx context.Context, manufacturer string) (int, error)
	Update(ctx context.Context, input product.UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
	Countries() []domain.Country
}

// ProductHandler serves the product endpoints.
type ProductHandler struct {
	svc productService
	log *slog.Logger
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(svc productService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, log: logger.With("handler", "products")}
}

// Register mounts the routes under /api/products.
func (h *ProductHandler) Register(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Delete("/", h.DeleteAll)
		r.Post("/batch", h.CreateMany)
		r.Get("/serial/{serial}", h.GetBySerial)
		r.Get("/countries", h.Countries)
		r.Get("/stats/total", h.CountTotal)
		r.Get("/stats/manufacturer/{manufacturer}", h.CountByManufacturer)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /api/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := domain.ProductFilter{
		Manufacturer:         q.str("manufacturer"),
		NameContains:         q.str("q"),
		ManufacturerContains: q.str("manufacturer_q"),
		SortByName:           q.sortedByName(),
	}
	if c := q.str("country"); c != nil {
		v := domain.Country(*c)
		filter.Country = &v
	}
	if err := q.err(); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	products, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponses(products))
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	created, err := h.svc.Create(r.Context(), toProductCreateInput(req))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductResponse(created))
}

// CreateMany handles POST /api/products/batch.
func (h *ProductHandler) CreateMany(w http.ResponseWriter, r *http.Request) {
	var req batchRequest[productRequest]
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	inputs := make([]product.CreateInput, len(req.Items))
	for i, item := range req.Items {
		inputs[i] = toProductCreateInput(item)
	}

	created, err := h.svc.CreateMany(r.Context(), inputs)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductResponses(created))
}

// Get handles GET /api/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	p, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}

// GetBySerial handles GET /api/products/serial/{serial}.
func (h *ProductHandler) GetBySerial(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetBySerial(r.Context(), pathParam(r, "serial"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}

// Update handles PATCH /api/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req productPatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), product.UpdateInput{
		ID:           id,
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		Country:      req.Country,
		Description:  req.Description,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(updated))
}

// Delete handles DELETE /api/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteAll handles DELETE /api/products.
func (h *ProductHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.DeleteAll(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, deletedResponse{Deleted: n})
}

// Countries handles GET /api/products/countries.
func (h *ProductHandler) Countries(w http.ResponseWriter, r *http.Request) {
	all := h.svc.Countries()
	out := make([]enumResponse, len(all))
	for i, c := range all {
		out[i] = enumResponse{Code: c.String(), Name: c.DisplayName()}
	}
	writeJSON(w, http.StatusOK, out)
}

// CountTotal handles GET /api/products/stats/total.
func (h *ProductHandler) CountTotal(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Count(r.Context(), domain.ProductFilter{})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// CountByManufacturer handles GET /api/products/stats/manufacturer/{manufacturer}.
func (h *ProductHandler) CountByManufacturer(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.CountByManufacturer(r.Context(), pathParam(r, "manufacturer"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

func toProductCreateInput(req productRequest) product.CreateInput {
	return product.CreateInput{
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		Country:      req.Country,
		Description:  req.Description,
	}
}
