package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"campaign-dashboard/internal/core/port"
)

const maxBodyBytes = 1 << 20

type messageResponse struct {
	Message string `json:"message"`
}

// writeJSON encodes v with the given status. Encoding should rarely fail;
// failures are only logged because the header is already sent.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the error kind onto a status. Client errors carry their
// hint as the message; anything else is logged and reported generically.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case port.IsValidation(err):
		status = http.StatusBadRequest
	case port.IsNotFound(err):
		status = http.StatusNotFound
	case port.IsUnauthenticated(err):
		status = http.StatusUnauthorized
	case port.IsConflict(err):
		status = http.StatusConflict
	default:
		attrs := []any{slog.String("method", r.Method), slog.String("path", r.URL.Path), slog.Any("error", err)}
		if c, ok := claimsFrom(r.Context()); ok {
			attrs = append(attrs, slog.String("user_id", c.UserID))
		}
		h.logger.Error("request failed", attrs...)
		h.writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal error"})
		return
	}

	msg := port.UserMessage(err)
	if msg == "" {
		msg = http.StatusText(status)
	}
	h.writeJSON(w, status, messageResponse{Message: msg})
}

// decodeJSON reads a JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Mark(errors.WithHint(err, "Invalid request body"), port.ErrValidation)
	}
	return nil
}

// pathID parses the {id} route parameter. A malformed id is a client
// error, reported with invalidMsg.
func pathID(r *http.Request, invalidMsg string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, port.NewValidationError(invalidMsg)
	}
	return id, nil
}

// bind decodes the body into dst and runs its validate tags. Any rule
// violation is reported to the client as msg.
func (h *Handler) bind(w http.ResponseWriter, r *http.Request, dst any, msg string) error {
	if err := decodeJSON(w, r, dst); err != nil {
		return err
	}
	if err := h.validate.StructCtx(r.Context(), dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return port.NewValidationError(msg)
		}
		return errors.Wrap(err, "validate request")
	}
	return nil
}
