package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	Me(ctx context.Context) (*domain.User, error)
	Activity(ctx context.Context, input user.ActivityInput) ([]domain.AuditRecord, error)
	History(ctx context.Context, input user.HistoryInput) ([]domain.AuditRecord, error)
}

// UserHandler serves the current account and audit history endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

// Register mounts /api/me and /api/history.
func (h *UserHandler) Register(r chi.Router) {
	r.Get("/api/me", h.Me)
	r.Get("/api/me/activity", h.Activity)
	r.Get("/api/history/{entity}/{id}", h.History)
}

// historyEntities maps the collection segment of a history URL to its audit entity type.
var historyEntities = map[string]domain.EntityType{
	"bodies":      domain.EntityTypeInspectionBody,
	"products":    domain.EntityTypeProduct,
	"inspections": domain.EntityTypeInspection,
}

type auditRecordResponse struct {
	ID         string         `json:"id"`
	UserID     *string        `json:"user_id"`
	EntityType string         `json:"entity_type"`
	EntityID   *string        `json:"entity_id"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Me handles GET /api/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Me(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{
		ID:       u.ID.String(),
		Email:    u.Email,
		Username: u.Username,
	})
}

// Activity handles GET /api/me/activity?limit=&offset=.
func (h *UserHandler) Activity(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	input := user.ActivityInput{Limit: q.int("limit"), Offset: q.int("offset")}
	if err := q.err(); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	records, err := h.svc.Activity(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditResponses(records))
}

// History handles GET /api/history/{entity}/{id}?limit=.
func (h *UserHandler) History(w http.ResponseWriter, r *http.Request) {
	entity, ok := historyEntities[chi.URLParam(r, "entity")]
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	q := newQuery(r)
	limit := q.int("limit")
	if err := q.err(); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	records, err := h.svc.History(r.Context(), user.HistoryInput{EntityType: entity, EntityID: id, Limit: limit})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditResponses(records))
}

func toAuditResponses(records []domain.AuditRecord) []auditRecordResponse {
	out := make([]auditRecordResponse, 0, len(records))
	for _, rec := range records {
		resp := auditRecordResponse{
			ID:         rec.ID.String(),
			EntityType: rec.EntityType.String(),
			Action:     rec.Action.String(),
			Changes:    rec.Changes,
			CreatedAt:  rec.CreatedAt,
		}
		if rec.UserID != nil {
			s := rec.UserID.String()
			resp.UserID = &s
		}
		if rec.EntityID != nil {
			s := rec.EntityID.String()
			resp.EntityID = &s
		}
		out = append(out, resp)
	}
	return out
}
