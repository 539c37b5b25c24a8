package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/saransh1220/storefront-vocabulary/internal/domain"
	"github.com/saransh1220/storefront-vocabulary/internal/dto"
	"github.com/saransh1220/storefront-vocabulary/internal/service"
	"github.com/saransh1220/storefront-vocabulary/internal/utils"
)

type VocabularyHandler struct {
	service service.VocabularyService
	logger  *slog.Logger
}

func NewVocabularyHandler(service service.VocabularyService, logger *slog.Logger) *VocabularyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VocabularyHandler{service: service, logger: logger}
}

func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, dto.VocabularyResponse{Enumerations: h.service.List()})
}

func (h *VocabularyHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.service.Describe(r.PathValue("name"))
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "enumeration not found", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, e)
}

func (h *VocabularyHandler) Parse(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var req dto.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Value == nil {
		utils.WriteError(w, http.StatusBadRequest, "value is required", nil)
		return
	}

	v, err := h.service.Parse(name, *req.Value)
	switch {
	case errors.Is(err, domain.ErrUnknownEnumeration):
		utils.WriteError(w, http.StatusNotFound, "enumeration not found", err)
		return
	case errors.Is(err, domain.ErrUnknownEnumerationValue):
		utils.WriteError(w, http.StatusUnprocessableEntity, "unknown enumeration value", err)
		return
	case err != nil:
		utils.WriteError(w, http.StatusInternalServerError, "failed to parse value", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.ParseResponse{Enumeration: name, Value: v})
}

// Drift reports 409 when the database disagrees with the vocabulary so that
// deploy checks can fail on the status code alone.
func (h *VocabularyHandler) Drift(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.CheckDrift(r.Context())
	if err != nil {
		h.logger.Error("drift check failed", "error", err)
		utils.WriteError(w, http.StatusServiceUnavailable, "drift check unavailable", err)
		return
	}

	status := http.StatusOK
	if !report.InSync {
		status = http.StatusConflict
	}
	utils.WriteJSON(w, status, report)
}
