package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/sravanipallapu19/healthComp/internal/api/recovery"
	"github.com/sravanipallapu19/healthComp/internal/api/respond"
	"github.com/sravanipallapu19/healthComp/internal/auth"
	"github.com/sravanipallapu19/healthComp/internal/services"
	"github.com/sravanipallapu19/healthComp/internal/store"
)

// Deps are the collaborators of the HTTP surface.
type Deps struct {
	Store     store.Store
	Issuer    *auth.Issuer
	Health    HealthSource
	Log       zerolog.Logger
	StreakCap int
	// Registry receives the HTTP metrics and backs /metrics. A fresh
	// registry is used when nil.
	Registry *prometheus.Registry
	// Now overrides the service clocks; nil means time.Now.
	Now func() time.Time
}

// NewRouter wires HTTP routes to handlers.
func NewRouter(d Deps) *mux.Router {
	reg := d.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	metrics := NewMetrics(reg)

	root := mux.NewRouter()
	// requestLogger wraps recovery so panics are logged with the request id
	// and counted as 500s.
	root.Use(requestLogger(d.Log, metrics))
	root.Use(recovery.Middleware(d.Log))

	userSvc := services.NewUserService(d.Store, d.Issuer)
	journalSvc := services.NewJournalService(d.Store, d.StreakCap)
	moodSvc := services.NewMoodService(d.Store)
	if d.Now != nil {
		journalSvc.SetClock(d.Now)
		moodSvc.SetClock(d.Now)
	}

	// Public
	authH := NewAuthHandler(userSvc)
	root.HandleFunc("/api/auth/register", authH.Register).Methods("POST")
	root.HandleFunc("/api/auth/login", authH.Login).Methods("POST")
	root.HandleFunc("/api/health", NewHealthHandler(d.Health).CheckHealth).Methods("GET")
	root.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods("GET")

	// Authenticated
	private := root.PathPrefix("/api").Subrouter()
	private.Use(auth.Middleware(d.Issuer, func(w http.ResponseWriter, err error) {
		respond.WriteServiceError(w, err)
	}))

	journal := NewJournalHandler(journalSvc)
	private.HandleFunc("/journal/entries", journal.ListEntries).Methods("GET")
	private.HandleFunc("/journal/entries", journal.CreateEntry).Methods("POST")
	private.HandleFunc("/journal/entries/{id}", journal.UpdateEntry).Methods("PUT")
	private.HandleFunc("/journal/entries/{id}", journal.SetFavorite).Methods("PATCH")
	private.HandleFunc("/journal/entries/{id}", journal.DeleteEntry).Methods("DELETE")
	private.HandleFunc("/journal/stats", journal.Stats).Methods("GET")

	mood := NewMoodHandler(moodSvc)
	private.HandleFunc("/mood/log", mood.LogMood).Methods("POST")
	private.HandleFunc("/mood/history", mood.History).Methods("GET")
	private.HandleFunc("/mood/stats", mood.Stats).Methods("GET")

	return root
}
