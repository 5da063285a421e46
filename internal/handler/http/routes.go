package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Get("/", h.root)
	router.Post("/login", h.login)

	router.Route("/customers", func(r chi.Router) {
		r.Get("/", h.listCustomers)
		r.Get("/{customerID}", h.getCustomer)
		r.Get("/{customerID}/risk-tolerance", h.getRiskTolerance)
		r.Get("/{customerID}/investments", h.getInvestments)
	})

	router.Route("/funds", func(r chi.Router) {
		r.Get("/", h.listFunds)
		r.Get("/{fundID}", h.getFund)
		r.Get("/{fundID}/price", h.getLatestPrice)
		r.Get("/{fundID}/prices", h.getPricesByPeriod)
		r.Get("/{fundID}/price/{date}", h.getPriceByDate)
		r.Get("/{fundID}/assets", h.getAssetComposition)
		r.Get("/{fundID}/asset-management-company", h.getManagementCompany)
	})

	return router
}
