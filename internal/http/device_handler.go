package httpapi

import (
	"net/http"
	"strings"

	"devicetrack/internal/repository"

	"go.uber.org/zap"
)

// DeviceHandler serves the device CRUD routes plus history and export.
type DeviceHandler struct {
	devices repository.DevicesRepo
	logger  *zap.Logger
}

func NewDeviceHandler(devices repository.DevicesRepo, logger *zap.Logger) *DeviceHandler {
	return &DeviceHandler{
		devices: devices,
		logger:  logger,
	}
}

// ServeHTTP implements http.Handler.
func (h *DeviceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/devices" && r.Method == http.MethodGet:
		h.ListDevices(w, r)
	case r.URL.Path == "/api/devices" && r.Method == http.MethodPost:
		h.CreateDevice(w, r)
	case r.URL.Path == "/api/devices/export" && r.Method == http.MethodGet:
		h.ExportDevices(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/devices/") && strings.HasSuffix(r.URL.Path, "/history") && r.Method == http.MethodGet:
		h.GetHistory(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/devices/") && r.Method == http.MethodPut:
		h.UpdateDevice(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/devices/") && r.Method == http.MethodDelete:
		h.DeleteDevice(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// ListDevices returns every device row.
func (h *DeviceHandler) ListDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := h.devices.ListDevices(r.Context())
	if err != nil {
		h.logger.Error("ListDevices failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, devices)
}

// CreateDevice inserts a device. The id, dateAdded and status are
// server-generated; a client-supplied status is ignored.
func (h *DeviceHandler) CreateDevice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string `json:"name"`
		SerialNumber string `json:"serialNumber"`
		AssetID      string `json:"assetId"`
	}
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, fail(err.Error()))
		return
	}

	device, err := h.devices.CreateDevice(r.Context(), req.Name, req.SerialNumber, req.AssetID)
	if err != nil {
		h.logger.Error("CreateDevice failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusCreated, device)
}

// UpdateDevice performs a checkout or check-in: the five body fields
// overwrite the row, checkoutTime is stamped and one history entry is
// appended. No existence or transition checks — double checkouts and
// check-ins of available devices pass through silently.
func (h *DeviceHandler) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	deviceID := strings.TrimPrefix(r.URL.Path, "/api/devices/")
	if deviceID == "" || strings.Contains(deviceID, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var req struct {
		Status        string `json:"status"`
		AssignedTo    string `json:"assignedTo"`
		StaffMember   string `json:"staffMember"`
		Ward          string `json:"ward"`
		CheckoutNotes string `json:"checkoutNotes"`
	}
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, fail(err.Error()))
		return
	}

	upd := repository.DeviceUpdate{
		Status:        req.Status,
		AssignedTo:    req.AssignedTo,
		StaffMember:   req.StaffMember,
		Ward:          req.Ward,
		CheckoutNotes: req.CheckoutNotes,
	}
	if err := h.devices.UpdateDevice(r.Context(), deviceID, upd); err != nil {
		h.logger.Error("UpdateDevice failed", zap.String("device_id", deviceID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, ok())
}

// DeleteDevice removes the device row. History stays queryable afterwards,
// and deleting an unknown id still succeeds.
func (h *DeviceHandler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	deviceID := strings.TrimPrefix(r.URL.Path, "/api/devices/")
	if deviceID == "" || strings.Contains(deviceID, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := h.devices.DeleteDevice(r.Context(), deviceID); err != nil {
		h.logger.Error("DeleteDevice failed", zap.String("device_id", deviceID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, ok())
}

// GetHistory returns the device's audit trail, newest first. Unknown ids
// yield an empty list.
func (h *DeviceHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	deviceID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/devices/"), "/history")
	if deviceID == "" || strings.Contains(deviceID, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	entries, err := h.devices.ListHistory(r.Context(), deviceID)
	if err != nil {
		h.logger.Error("GetHistory failed", zap.String("device_id", deviceID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
