package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/internal/service/inspection"
	"github.com/heartmarshall/inspection-registry/internal/service/report"
)

type inspectionService interface {
	Create(ctx context.Context, input inspection.CreateInput) (*domain.Inspection, error)
	CreateMany(ctx context.Context, inputs []inspection.CreateInput) ([]domain.Inspection, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Inspection, error)
	List(ctx context.Context, filter domain.InspectionFilter) ([]domain.Inspection, error)
	ListUnsafe(ctx context.Context) ([]domain.Inspection, error)
	Stats(ctx context.Context, filter domain.InspectionFilter) (domain.InspectionStats, error)
	CountBySafety(ctx context.Context, safe bool) (int, error)
	CountByBody(ctx context.Context, bodyID uuid.UUID) (int, error)
	CountByProduct(ctx context.Context, productID uuid.UUID) (int, error)
	CountByDate(ctx context.Context, date time.Time) (int, error)
	Update(ctx context.Context, input inspection.UpdateInput) (*domain.Inspection, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
}

type reportService interface {
	Build(ctx context.Context, filter domain.InspectionFilter) (*report.Report, error)
	Archive(ctx context.Context, r *report.Report) (string, error)
}

// InspectionHandler serves the inspection and report endpoints.
type InspectionHandler struct {
	svc     inspectionService
	reports reportService
	log     *slog.Logger
}

// NewInspectionHandler creates an InspectionHandler.
func NewInspectionHandler(svc inspectionService, reports reportService, logger *slog.Logger) *InspectionHandler {
	return &InspectionHandler{svc: svc, reports: reports, log: logger.With("handler", "inspections")}
}

// Register mounts the routes under /api/inspections.
func (h *InspectionHandler) Register(r chi.Router) {
	r.Route("/api/inspections", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Delete("/", h.DeleteAll)
		r.Post("/batch", h.CreateMany)
		r.Get("/unsafe", h.ListUnsafe)
		r.Get("/stats/total", h.StatsTotal)
		r.Get("/stats/safety/{safe}", h.CountBySafety)
		r.Get("/stats/body/{id}", h.CountByBody)
		r.Get("/stats/product/{id}", h.CountByProduct)
		r.Get("/stats/date/{date}", h.CountByDate)
		r.Get("/report", h.Report)
		r.Post("/report/archive", h.ArchiveReport)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /api/inspections.
func (h *InspectionHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := inspectionFilterFromQuery(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	inspections, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInspectionResponses(inspections))
}

// ListUnsafe handles GET /api/inspections/unsafe.
func (h *InspectionHandler) ListUnsafe(w http.ResponseWriter, r *http.Request) {
	inspections, err := h.svc.ListUnsafe(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInspectionResponses(inspections))
}

// Create handles POST /api/inspections.
func (h *InspectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req inspectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input, err := toInspectionCreateInput(req, "")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toInspectionResponse(created))
}

// CreateMany handles POST /api/inspections/batch.
func (h *InspectionHandler) CreateMany(w http.ResponseWriter, r *http.Request) {
	var req batchRequest[inspectionRequest]
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	inputs := make([]inspection.CreateInput, len(req.Items))
	for i, item := range req.Items {
		input, err := toInspectionCreateInput(item, fmt.Sprintf("items[%d].", i))
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		inputs[i] = input
	}

	created, err := h.svc.CreateMany(r.Context(), inputs)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toInspectionResponses(created))
}

// Get handles GET /api/inspections/{id}.
func (h *InspectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	in, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInspectionResponse(in))
}

// Update handles PATCH /api/inspections/{id}.
func (h *InspectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req inspectionPatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := inspection.UpdateInput{
		ID:        id,
		BodyID:    req.BodyID,
		ProductID: req.ProductID,
		Results:   req.Results,
		Safe:      req.Safe,
	}
	if req.Date != nil {
		d, err := parseDate("date", *req.Date)
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		input.Date = &d
	}

	updated, err := h.svc.Update(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInspectionResponse(updated))
}

// Delete handles DELETE /api/inspections/{id}.
func (h *InspectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// DeleteAll handles DELETE /api/inspections.
func (h *InspectionHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.DeleteAll(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, deletedResponse{Deleted: n})
}

// StatsTotal handles GET /api/inspections/stats/total. Accepts the list filters.
func (h *InspectionHandler) StatsTotal(w http.ResponseWriter, r *http.Request) {
	filter, err := inspectionFilterFromQuery(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	stats, err := h.svc.Stats(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}

// CountBySafety handles GET /api/inspections/stats/safety/{safe}.
func (h *InspectionHandler) CountBySafety(w http.ResponseWriter, r *http.Request) {
	safe, err := parseBool("safe", chi.URLParam(r, "safe"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writeCount(w, r, func(ctx context.Context) (int, error) { return h.svc.CountBySafety(ctx, safe) })
}

// CountByBody handles GET /api/inspections/stats/body/{id}.
func (h *InspectionHandler) CountByBody(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writeCount(w, r, func(ctx context.Context) (int, error) { return h.svc.CountByBody(ctx, id) })
}

// CountByProduct handles GET /api/inspections/stats/product/{id}.
func (h *InspectionHandler) CountByProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writeCount(w, r, func(ctx context.Context) (int, error) { return h.svc.CountByProduct(ctx, id) })
}

// CountByDate handles GET /api/inspections/stats/date/{date}.
func (h *InspectionHandler) CountByDate(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate("date", chi.URLParam(r, "date"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writeCount(w, r, func(ctx context.Context) (int, error) { return h.svc.CountByDate(ctx, date) })
}

func (h *InspectionHandler) writeCount(w http.ResponseWriter, r *http.Request, count func(context.Context) (int, error)) {
	n, err := count(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

type reportResponse struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Stats       statsResponse        `json:"stats"`
	Inspections []inspectionResponse `json:"inspections"`
}

type archiveResponse struct {
	Key string `json:"key"`
}

// Report handles GET /api/inspections/report. format=csv streams a CSV
// attachment; anything else returns JSON.
func (h *InspectionHandler) Report(w http.ResponseWriter, r *http.Request) {
	filter, err := inspectionFilterFromQuery(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	rep, err := h.reports.Build(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="inspections_%s.csv"`, rep.GeneratedAt.Format("20060102T150405Z")))
		if err := report.WriteCSV(w, rep); err != nil {
			h.log.ErrorContext(r.Context(), "write csv report", slog.String("error", err.Error()))
		}
		return
	}

	writeJSON(w, http.StatusOK, reportResponse{
		GeneratedAt: rep.GeneratedAt,
		Stats:       toStatsResponse(rep.Stats),
		Inspections: toInspectionResponses(rep.Inspections),
	})
}

// ArchiveReport handles POST /api/inspections/report/archive.
func (h *InspectionHandler) ArchiveReport(w http.ResponseWriter, r *http.Request) {
	filter, err := inspectionFilterFromQuery(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	rep, err := h.reports.Build(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	key, err := h.reports.Archive(r.Context(), rep)
	if errors.Is(err, report.ErrArchiveDisabled) {
		writeError(w, http.StatusServiceUnavailable, codeUnavailable, "report archive is not configured")
		return
	}
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, archiveResponse{Key: key})
}

func toInspectionCreateInput(req inspectionRequest, prefix string) (inspection.CreateInput, error) {
	input := inspection.CreateInput{
		BodyID:    req.BodyID,
		ProductID: req.ProductID,
		Results:   req.Results,
		Safe:      req.Safe,
	}
	if req.Date != nil {
		d, err := parseDate(prefix+"date", *req.Date)
		if err != nil {
			return inspection.CreateInput{}, err
		}
		input.Date = &d
	}
	return input, nil
}

func inspectionFilterFromQuery(r *http.Request) (domain.InspectionFilter, error) {
	q := newQuery(r)
	filter := domain.InspectionFilter{
		Date:      q.date("date"),
		From:      q.date("from"),
		To:        q.date("to"),
		BodyID:    q.uuid("body_id"),
		ProductID: q.uuid("product_id"),
		Safe:      q.bool("safe"),
	}
	if s := q.str("sort"); s != nil {
		filter.Sort = domain.InspectionSort(*s)
	}
	return filter, q.err()
}
