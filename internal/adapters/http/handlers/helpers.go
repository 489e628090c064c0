package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/storefront-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storefront-core/internal/domain"
	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
	"github.com/jsamuelsen11/storefront-core/internal/domain/lifecycle"
	"github.com/jsamuelsen11/storefront-core/internal/platform/logging"
)

// maxCommandBody caps a command request body. The largest legitimate body is
// a bulk deactivate id list.
const maxCommandBody = 1 << 20

// parseID reads the {id} path parameter in the id form used by kind.
func parseID(r *http.Request, kind lifecycle.Kind) (identifier.ID, error) {
	return kind.ParseID(chi.URLParam(r, "id"))
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

// bodyProblem explains why a command body could not be decoded.
func bodyProblem(err error) string {
	var tooLarge *http.MaxBytesError
	var syntax *json.SyntaxError
	var typ *json.UnmarshalTypeError
	switch {
	case errors.As(err, &tooLarge):
		return fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit)
	case errors.As(err, &typ):
		return fmt.Sprintf("field %q must be %s", typ.Field, typ.Type)
	case errors.As(err, &syntax), errors.Is(err, io.ErrUnexpectedEOF):
		return "invalid JSON"
	case errors.Is(err, io.EOF):
		return "is required"
	default:
		return "invalid JSON"
	}
}

// decodeAndValidate reads a command body into dst and runs its Validate.
// An empty body is accepted when optional is set. On failure it has already
// written a 400 problem response and returns false.
func decodeAndValidate[T interface{ Validate() error }](w http.ResponseWriter, r *http.Request, dst T, optional bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxCommandBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !(optional && errors.Is(err, io.EOF)) {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": bodyProblem(err)},
		})
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
