package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"parkingslots/internal/auth"
	"parkingslots/internal/service"
)

// NewRouter exposes the slot operations. Registration sits behind admin auth.
func NewRouter(slots *service.SlotService, admins service.AdminAuthService, jwtSecret []byte, gatherer prometheus.Gatherer) *mux.Router {
	slotHandler := NewSlotHandler(slots)
	adminHandler := NewAdminHandler(slots)
	adminAuthHandler := NewAdminAuthHandler(admins)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/slots", slotHandler.ListSlots).Methods(http.MethodGet)
	r.HandleFunc("/api/stats", slotHandler.GetStats).Methods(http.MethodGet)
	r.HandleFunc("/api/allocations", slotHandler.Allocate).Methods(http.MethodPost)
	r.HandleFunc("/api/slots/{index:[0-9]+}/occupy", slotHandler.AllocateAt).Methods(http.MethodPost)
	r.HandleFunc("/api/slots/{index:[0-9]+}/release", slotHandler.Release).Methods(http.MethodPost)
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods(http.MethodPost)

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware(jwtSecret))
	admin.HandleFunc("/slots", adminHandler.RegisterSlot).Methods(http.MethodPost)

	return r
}
