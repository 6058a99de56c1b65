package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"colcal/quotation/internal/app/config"
	"colcal/quotation/internal/app/http/handlers"
	"colcal/quotation/internal/app/http/middleware"
	"colcal/quotation/internal/app/metrics"
)

func NewRouter(cfg config.Config, log *zap.Logger, m *metrics.Metrics, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(log))
	r.Use(middleware.Count(m.HTTPRequests))
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/quotes", h.CreateQuote)
		r.Get("/catalog/products", h.SearchProducts)

		r.Post("/quotations", h.CreateQuotation)
		r.Route("/quotations/{id}", func(r chi.Router) {
			r.Get("/", h.GetQuotation)
			r.Delete("/", h.DeleteQuotation)

			r.Put("/customer", h.PutCustomer)
			r.Patch("/customer", h.PatchCustomer)
			r.Put("/sales-rep", h.PutSalesRep)
			r.Patch("/sales-rep", h.PatchSalesRep)
			r.Put("/sales-rep/signature", h.PutSignature)
			r.Put("/project", h.PutProject)
			r.Put("/pricing", h.PutPricing)

			r.Post("/items", h.AddItem)
			r.Patch("/items/{itemID}", h.PatchItem)
			r.Delete("/items/{itemID}", h.DeleteItem)
			r.Put("/items/{itemID}/image", h.PutItemImage)

			r.Get("/preview", h.Preview)
			r.Get("/pdf", h.DownloadPDF)
			r.Get("/notifications", h.Notifications)
		})
	})

	return r
}
