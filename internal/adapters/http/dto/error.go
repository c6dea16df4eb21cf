package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/tasklists-service/internal/domain"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/logging"
)

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// genericDetail replaces the message of any error that maps to 500.
const genericDetail = "internal server error"

// statusBySentinel maps domain sentinel errors to HTTP statuses. The first
// match wins; unmatched errors are 500.
var statusBySentinel = []struct {
	sentinel error
	status   int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusServiceUnavailable},
}

// NewErrorResponse builds the problem document for err, with the request URI
// as instance. Validation errors list one entry per offending location.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := StatusFor(err)
	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = genericDetail
	}

	resp := NewStatusResponse(r, status, detail)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationDetails(verr.Fields)
	}
	return resp
}

// NewStatusResponse builds a problem document for a status that does not come
// from a domain error, such as 429 or 504.
func NewStatusResponse(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

// WriteErrorResponse writes the problem document for err.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteStatusResponse writes a problem document for status.
func WriteStatusResponse(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, NewStatusResponse(r, status, detail))
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode problem response", slog.Any("error", err))
	}
}

// StatusFor returns the HTTP status that err is reported with.
func StatusFor(err error) int {
	for _, m := range statusBySentinel {
		if errors.Is(err, m.sentinel) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

func validationDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: fieldLocation(field), Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}

// PathPrefix marks validation fields that name a URL path parameter.
const PathPrefix = "path."

// fieldLocation renders a validation key as a dotted location. Field names
// and JSON pointers ("/priority") land under "body"; path parameter keys are
// kept verbatim.
func fieldLocation(field string) string {
	if strings.HasPrefix(field, PathPrefix) {
		return field
	}
	field = strings.ReplaceAll(strings.Trim(field, "/"), "/", ".")
	if field == "" || field == "body" {
		return "body"
	}
	return "body." + field
}
