package httpapi

import (
	"net/http"
	"strings"

	"devicetrack/internal/repository"

	"go.uber.org/zap"
)

// StaffHandler serves the staff CRUD routes.
type StaffHandler struct {
	staff  repository.StaffRepo
	logger *zap.Logger
}

func NewStaffHandler(staff repository.StaffRepo, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{
		staff:  staff,
		logger: logger,
	}
}

// ServeHTTP implements http.Handler.
func (h *StaffHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/staff" && r.Method == http.MethodGet:
		h.ListStaff(w, r)
	case r.URL.Path == "/api/staff" && r.Method == http.MethodPost:
		h.CreateStaff(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/staff/") && r.Method == http.MethodDelete:
		h.DeleteStaff(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *StaffHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.staff.ListStaff(r.Context())
	if err != nil {
		h.logger.Error("ListStaff failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, staff)
}

func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, fail(err.Error()))
		return
	}

	member, err := h.staff.CreateStaff(r.Context(), req.Name, req.Role)
	if err != nil {
		h.logger.Error("CreateStaff failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (h *StaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	staffID := strings.TrimPrefix(r.URL.Path, "/api/staff/")
	if staffID == "" || strings.Contains(staffID, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := h.staff.DeleteStaff(r.Context(), staffID); err != nil {
		h.logger.Error("DeleteStaff failed", zap.String("staff_id", staffID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, ok())
}
