package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
)

const maxBodyBytes = 4 << 20

// decodeJSON decodes the request body into v. Syntax errors, unknown fields
// and trailing data are reported as ErrMalformedPayload.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrMalformedPayload, err.Error())
	}
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON body", domain.ErrMalformedPayload)
	}
	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

// parseDate parses an ISO calendar date, reporting failures against field.
func parseDate(field, raw string) (time.Time, error) {
	d, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return d, nil
}

func parseBool(field, raw string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, domain.NewValidationError(field, "must be true or false")
	}
	return b, nil
}

// query collects typed query parameters and the field errors they produce.
type query struct {
	values url.Values
	errs   []domain.FieldError
}

func newQuery(r *http.Request) *query {
	return &query{values: r.URL.Query()}
}

func (q *query) fail(field, msg string) {
	q.errs = append(q.errs, domain.FieldError{Field: field, Message: msg})
}

func (q *query) str(key string) *string {
	v := strings.TrimSpace(q.values.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

func (q *query) date(key string) *time.Time {
	raw := q.str(key)
	if raw == nil {
		return nil
	}
	d, err := domain.ParseDate(*raw)
	if err != nil {
		q.fail(key, "must be a date in YYYY-MM-DD format")
		return nil
	}
	return &d
}

func (q *query) uuid(key string) *uuid.UUID {
	raw := q.str(key)
	if raw == nil {
		return nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		q.fail(key, "must be a valid UUID")
		return nil
	}
	return &id
}

func (q *query) bool(key string) *bool {
	raw := q.str(key)
	if raw == nil {
		return nil
	}
	b, err := strconv.ParseBool(*raw)
	if err != nil {
		q.fail(key, "must be true or false")
		return nil
	}
	return &b
}

func (q *query) int(key string) int {
	raw := q.str(key)
	if raw == nil {
		return 0
	}
	n, err := strconv.Atoi(*raw)
	if err != nil {
		q.fail(key, "must be an integer")
		return 0
	}
	return n
}

// sortedByName reports whether sort=name was requested; any other value is an error.
func (q *query) sortedByName() bool {
	switch raw := q.str("sort"); {
	case raw == nil:
		return false
	case *raw == "name":
		return true
	default:
		q.fail("sort", "unknown sort order")
		return false
	}
}

func (q *query) err() error {
	if len(q.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(q.errs)
}
