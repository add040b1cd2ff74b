package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/internal/service/body"
)

type bodyService interface {
	Create(ctx context.Context, input body.CreateInput) (*domain.InspectionBody, error)
	CreateMany(ctx context.Context, inputs []body.CreateInput) ([]domain.InspectionBody, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InspectionBody, error)
	GetByName(ctx context.Context, name string) (*domain.InspectionBody, error)
	List(ctx context.Context, filter domain.BodyFilter) ([]domain.InspectionBody, error)
	Count(ctx context.Context, filter domain.BodyFilter) (int, error)
	CountByJurisdiction(ctx context.Context, j domain.Jurisdiction) (int, error)
	CountByCompetence(ctx context.Context, c domain.Competence) (int, error)
	Update(ctx context.Context, input body.UpdateInput) (*domain.InspectionBody, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
	Jurisdictions() []domain.Jurisdiction
	Competences() []domain.Competence
}

// BodyHandler serves the inspection body endpoints.
type BodyHandler struct {
	svc bodyService
	log *slog.Logger
}

// NewBodyHandler creates a BodyHandler.
func NewBodyHandler(svc bodyService, logger *slog.Logger) *BodyHandler {
	return &BodyHandler{svc: svc, log: logger.With("handler", "bodies")}
}

// Register mounts the routes under /api/bodies.
func (h *BodyHandler) Register(r chi.Router) {
	r.Route("/api/bodies", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Delete("/", h.DeleteAll)
		r.Post("/batch", h.CreateMany)
		r.Get("/by-name/{name}", h.GetByName)
		r.Get("/jurisdictions", h.Jurisdictions)
		r.Get("/competences", h.Competences)
		r.Get("/stats/total", h.CountTotal)
		r.Get("/stats/jurisdiction/{jurisdiction}", h.CountByJurisdiction)
		r.Get("/stats/competence/{competence}", h.CountByCompetence)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /api/bodies.
func (h *BodyHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := bodyFilterFromQuery(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	bodies, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBodyResponses(bodies))
}

// Create handles POST /api/bodies.
func (h *BodyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bodyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	created, err := h.svc.Create(r.Context(), toBodyCreateInput(req))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBodyResponse(created))
}

// CreateMany handles POST /api/bodies/batch.
func (h *BodyHandler) CreateMany(w http.ResponseWriter, r *http.Request) {
	var req batchRequest[bodyRequest]
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	inputs := make([]body.CreateInput, len(req.Items))
	for i, item := range req.Items {
		inputs[i] = toBodyCreateInput(item)
	}

	created, err := h.svc.CreateMany(r.Context(), inputs)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBodyResponses(created))
}

// Get handles GET /api/bodies/{id}.
func (h *BodyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	b, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBodyResponse(b))
}

// GetByName handles GET /api/bodies/by-name/{name}.
func (h *BodyHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.GetByName(r.Context(), pathParam(r, "name"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBodyResponse(b))
}

// Update handles PATCH /api/bodies/{id}.
func (h *BodyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req bodyPatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := body.UpdateInput{
		ID:           id,
		Name:         req.Name,
		Jurisdiction: req.Jurisdiction,
		Competence:   req.Competence,
	}
	if c := req.Contact; c != nil {
		input.FirstName = c.FirstName
		input.LastName = c.LastName
		input.Phone = c.Phone
		input.Email = c.Email
	}

	updated, err := h.svc.Update(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBodyResponse(updated))
}

// Delete handles DELETE /api/bodies/{id}.
func (h *BodyHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// DeleteAll handles DELETE /api/bodies.
func (h *BodyHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.DeleteAll(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, deletedResponse{Deleted: n})
}

// Jurisdictions handles GET /api/bodies/jurisdictions.
func (h *BodyHandler) Jurisdictions(w http.ResponseWriter, r *http.Request) {
	all := h.svc.Jurisdictions()
	out := make([]enumResponse, len(all))
	for i, j := range all {
		out[i] = enumResponse{Code: j.String(), Name: j.DisplayName()}
	}
	writeJSON(w, http.StatusOK, out)
}

// Competences handles GET /api/bodies/competences.
func (h *BodyHandler) Competences(w http.ResponseWriter, r *http.Request) {
	all := h.svc.Competences()
	out := make([]enumResponse, len(all))
	for i, c := range all {
		out[i] = enumResponse{Code: c.String(), Name: c.DisplayName()}
	}
	writeJSON(w, http.StatusOK, out)
}

// CountTotal handles GET /api/bodies/stats/total.
func (h *BodyHandler) CountTotal(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Count(r.Context(), domain.BodyFilter{})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// CountByJurisdiction handles GET /api/bodies/stats/jurisdiction/{jurisdiction}.
func (h *BodyHandler) CountByJurisdiction(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.CountByJurisdiction(r.Context(), domain.Jurisdiction(chi.URLParam(r, "jurisdiction")))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// CountByCompetence handles GET /api/bodies/stats/competence/{competence}.
func (h *BodyHandler) CountByCompetence(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.CountByCompetence(r.Context(), domain.Competence(chi.URLParam(r, "competence")))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

func toBodyCreateInput(req bodyRequest) body.CreateInput {
	return body.CreateInput{
		Name:         req.Name,
		Jurisdiction: req.Jurisdiction,
		Competence:   req.Competence,
		FirstName:    req.Contact.FirstName,
		LastName:     req.Contact.LastName,
		Phone:        req.Contact.Phone,
		Email:        req.Contact.Email,
	}
}

func bodyFilterFromQuery(r *http.Request) (domain.BodyFilter, error) {
	q := newQuery(r)
	filter := domain.BodyFilter{
		NameContains: q.str("q"),
		Email:        q.str("email"),
		Phone:        q.str("phone"),
		FirstName:    q.str("first_name"),
		LastName:     q.str("last_name"),
		SortByName:   q.sortedByName(),
	}
	if j := q.str("jurisdiction"); j != nil {
		v := domain.Jurisdiction(*j)
		filter.Jurisdiction = &v
	}
	if c := q.str("competence"); c != nil {
		v := domain.Competence(*c)
		filter.Competence = &v
	}
	return filter, q.err()
}
