package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Cheertaboi/marketplace-schema/internal/models"
	"github.com/Cheertaboi/marketplace-schema/internal/service"
)

const maxBodyBytes = 4 << 20

type violationResponse struct {
	Error      string                    `json:"error"`
	Violations []*models.ConstraintError `json:"violations"`
}

type recordResponse struct {
	Valid  bool          `json:"valid"`
	Record models.Entity `json:"record"`
}

type batchResponse struct {
	Invalid int              `json:"invalid"`
	Results []service.Result `json:"results"`
}

type ValidationHandler struct {
	service *service.ValidationService
}

func NewValidationHandler(svc *service.ValidationService) *ValidationHandler {
	return &ValidationHandler{service: svc}
}

// Validate handles POST /validate/{entity}
func (h *ValidationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")

	var raw json.RawMessage
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	record, err := h.service.ValidateRecord(r.Context(), entity, raw)
	var decodeErr *service.DecodeError
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, recordResponse{Valid: true, Record: record})
	case errors.Is(err, service.ErrUnknownEntity):
		writeError(w, http.StatusNotFound, "unknown_entity", entity)
	case errors.As(err, &decodeErr):
		writeError(w, http.StatusBadRequest, "invalid_body", decodeErr.Err.Error())
	case errors.Is(err, models.ErrConstraint):
		writeJSON(w, http.StatusUnprocessableEntity, violationResponse{
			Error:      "constraint_violation",
			Violations: models.Violations(err),
		})
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

// ValidateBatch handles POST /validate/{entity}/batch with a JSON array body.
// Any invalid record turns the response into a 422.
func (h *ValidationHandler) ValidateBatch(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")

	var raws []json.RawMessage
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&raws); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	results, err := h.service.ValidateBatch(r.Context(), entity, raws)
	if errors.Is(err, service.ErrUnknownEntity) {
		writeError(w, http.StatusNotFound, "unknown_entity", entity)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	resp := batchResponse{Results: results}
	for _, res := range results {
		if !res.Valid {
			resp.Invalid++
		}
	}
	code := http.StatusOK
	if resp.Invalid > 0 {
		code = http.StatusUnprocessableEntity
	}
	writeJSON(w, code, resp)
}
