package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/taskvio/timetrack/docs"
	approvalhandlers "github.com/taskvio/timetrack/internal/handlers/approval"
	completionhandlers "github.com/taskvio/timetrack/internal/handlers/completion"
	escrowhandlers "github.com/taskvio/timetrack/internal/handlers/escrow"
	statshandlers "github.com/taskvio/timetrack/internal/handlers/stats"
	timetrackhandlers "github.com/taskvio/timetrack/internal/handlers/timetrack"
	"github.com/taskvio/timetrack/internal/service"
	"github.com/taskvio/timetrack/pkg/auth"
)

type TimetrackHandler interface {
	InitTracking(w http.ResponseWriter, r *http.Request)
	LogEntry(w http.ResponseWriter, r *http.Request)
	GetEntries(w http.ResponseWriter, r *http.Request)
	UpdateEntry(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)
	GetTracking(w http.ResponseWriter, r *http.Request)
}

type ApprovalHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	CustomerInitiate(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	ApproveAll(w http.ResponseWriter, r *http.Request)
}

type EscrowHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Release(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type CompletionHandler interface {
	MarkComplete(w http.ResponseWriter, r *http.Request)
}

type StatsHandler interface {
	ProviderStats(w http.ResponseWriter, r *http.Request)
	CustomerStats(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	TimetrackHandler  TimetrackHandler
	ApprovalHandler   ApprovalHandler
	EscrowHandler     EscrowHandler
	CompletionHandler CompletionHandler
	StatsHandler      StatsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		TimetrackHandler:  timetrackhandlers.New(s.LedgerService),
		ApprovalHandler:   approvalhandlers.New(s.ApprovalService),
		EscrowHandler:     escrowhandlers.New(s.EscrowService),
		CompletionHandler: completionhandlers.New(s.CompletionService),
		StatsHandler:      statshandlers.New(s.StatsService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Route("/api/orders/{orderID}", func(r chi.Router) {
			r.Route("/time", func(r chi.Router) {
				r.Post("/", h.TimetrackHandler.InitTracking)
				r.Get("/", h.TimetrackHandler.GetTracking)
				r.Route("/entries", func(r chi.Router) {
					r.Post("/", h.TimetrackHandler.LogEntry)
					r.Get("/", h.TimetrackHandler.GetEntries)
					r.Patch("/{entryID}", h.TimetrackHandler.UpdateEntry)
					r.Delete("/{entryID}", h.TimetrackHandler.DeleteEntry)
				})
				r.Route("/approvals", func(r chi.Router) {
					r.Post("/", h.ApprovalHandler.Submit)
					r.Post("/customer", h.ApprovalHandler.CustomerInitiate)
					r.Post("/{requestID}/decision", h.ApprovalHandler.Decide)
				})
				r.Post("/approve-all", h.ApprovalHandler.ApproveAll)
			})
			r.Route("/escrow", func(r chi.Router) {
				r.Post("/", h.EscrowHandler.Create)
				r.Get("/", h.EscrowHandler.Get)
				r.Post("/paid", h.EscrowHandler.MarkPaid)
				r.Post("/release", h.EscrowHandler.Release)
			})
			r.Post("/completion", h.CompletionHandler.MarkComplete)
		})
		r.Get("/api/providers/{providerID}/stats", h.StatsHandler.ProviderStats)
		r.Get("/api/customers/{customerID}/stats", h.StatsHandler.CustomerStats)
	})

	return r
}
