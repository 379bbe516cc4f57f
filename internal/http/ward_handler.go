package httpapi

import (
	"net/http"
	"strings"

	"devicetrack/internal/repository"

	"go.uber.org/zap"
)

// WardHandler serves the ward CRUD routes.
type WardHandler struct {
	wards  repository.WardsRepo
	logger *zap.Logger
}

func NewWardHandler(wards repository.WardsRepo, logger *zap.Logger) *WardHandler {
	return &WardHandler{
		wards:  wards,
		logger: logger,
	}
}

// ServeHTTP implements http.Handler.
func (h *WardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/wards" && r.Method == http.MethodGet:
		h.ListWards(w, r)
	case r.URL.Path == "/api/wards" && r.Method == http.MethodPost:
		h.CreateWard(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/wards/") && r.Method == http.MethodDelete:
		h.DeleteWard(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *WardHandler) ListWards(w http.ResponseWriter, r *http.Request) {
	wards, err := h.wards.ListWards(r.Context())
	if err != nil {
		h.logger.Error("ListWards failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, wards)
}

func (h *WardHandler) CreateWard(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, fail(err.Error()))
		return
	}

	ward, err := h.wards.CreateWard(r.Context(), req.Name)
	if err != nil {
		h.logger.Error("CreateWard failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusCreated, ward)
}

func (h *WardHandler) DeleteWard(w http.ResponseWriter, r *http.Request) {
	wardID := strings.TrimPrefix(r.URL.Path, "/api/wards/")
	if wardID == "" || strings.Contains(wardID, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := h.wards.DeleteWard(r.Context(), wardID); err != nil {
		h.logger.Error("DeleteWard failed", zap.String("ward_id", wardID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, ok())
}
