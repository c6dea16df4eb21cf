package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/tasklists-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasklists-service/internal/adapters/http/schema"
	"github.com/jsamuelsen11/tasklists-service/internal/domain"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/logging"
)

const msgInvalidUUID = "must be a valid UUID"

// parseUUID extracts a UUID path parameter from the chi URL params.
func parseUUID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(dto.PathPrefix+param, msgInvalidUUID)
	}
	return id, nil
}

// parseListAndTaskIDs extracts the {listId} and {id} path parameters.
func parseListAndTaskIDs(r *http.Request) (listID, id uuid.UUID, err error) {
	listID, err = parseUUID(r, "listId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err = parseUUID(r, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return listID, id, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "failed to encode response",
			slog.Int("status", status), slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// readBody reads the request body, limited to maxJSONBodyBytes. On failure
// it writes a 400 error response and returns false.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "unreadable or too large"))
		return nil, false
	}
	return raw, true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate checks the body against the named schema, decodes it
// into dst and runs the DTO's semantic validation. On any failure it writes
// an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, name schema.Name, dst T) bool {
	raw, ok := readBody(w, r)
	if !ok {
		return false
	}
	if err := schema.Validate(name, raw); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "invalid JSON"))
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
