package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"ferialibro/internal/delivery/http/helpers"
	"ferialibro/internal/domain"
)

// MessageResponse is the confirmation body for updates and deletes.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// pathID parses the {id} path segment. On failure it writes a 400 and
// returns false.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "id inválido")
		return 0, false
	}
	return id, true
}

// writeDomainError maps domain failures onto HTTP statuses: invalid input and
// bad catalog references → 400, missing target → 404 (with notFoundMsg),
// room double-booking and delete-blocked-by-references → 409. Anything
// unclassified is a 500 with the message passed through, and is the only
// case logged as a server error.
func writeDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, notFoundMsg string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, ve.Msg)
	case errors.Is(err, domain.ErrReferenciaInvalida):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrSalaOcupada), errors.Is(err, domain.ErrEnUso):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
