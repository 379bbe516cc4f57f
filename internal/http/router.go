package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router wraps the standard library http.ServeMux (no third-party router
// needed for a handful of routes).
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterDeviceRoutes: device CRUD + history + inventory export.
func (r *Router) RegisterDeviceRoutes(h *DeviceHandler) {
	r.Handle("/api/devices", h.ServeHTTP)
	r.Handle("/api/devices/", h.ServeHTTP)
}

// RegisterStaffRoutes: staff CRUD.
func (r *Router) RegisterStaffRoutes(h *StaffHandler) {
	r.Handle("/api/staff", h.ServeHTTP)
	r.Handle("/api/staff/", h.ServeHTTP)
}

// RegisterWardRoutes: ward CRUD.
func (r *Router) RegisterWardRoutes(h *WardHandler) {
	r.Handle("/api/wards", h.ServeHTTP)
	r.Handle("/api/wards/", h.ServeHTTP)
}
