package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/booklibrary/api/controllers"
	cartcontrollers "github.com/angelmondragon/booklibrary/api/controllers/cart"
	"github.com/angelmondragon/booklibrary/api/middleware"
	"github.com/angelmondragon/booklibrary/internal/cart"
	"github.com/angelmondragon/booklibrary/pkg/config"
	"github.com/angelmondragon/booklibrary/pkg/logger"
	"github.com/angelmondragon/booklibrary/pkg/metrics"
	"github.com/angelmondragon/booklibrary/pkg/session"
)

// Params carries everything the router wires into handlers.
type Params struct {
	Config      *config.Config
	Logger      *logger.Logger
	Catalog     controllers.BookCatalog
	CartService cart.Service
	Sessions    *session.Issuer
	// ReadyChecks are pinged by /health/ready; empty with the memory cart store.
	ReadyChecks map[string]controllers.Pinger
	Gatherer    prometheus.Gatherer
	HTTPMetrics *metrics.HTTPMetrics
}

func NewRouter(p Params) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.HTTPMetrics),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg.App.Env))
		r.Get("/ready", controllers.HealthReady(cfg.App.Env, p.ReadyChecks, logg))
	})

	if p.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/books", controllers.BooksList(p.Catalog, logg))
		r.Get("/books/{bookId}", controllers.BookGet(p.Catalog, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.Session(p.Sessions, middleware.SessionOptions{
				CookieName: cfg.Session.CookieName,
				Secure:     cfg.Session.Secure,
			}, logg))
			r.Get("/", cartcontrollers.CartView(p.CartService, logg))
			r.Get("/count", cartcontrollers.CartCount(p.CartService, logg))
			r.Post("/items", cartcontrollers.CartAddItem(p.CartService, logg))
			r.Post("/remove", cartcontrollers.CartRemoveItem(p.CartService, logg))
			r.Post("/quantity", cartcontrollers.CartUpdateQuantity(p.CartService, logg))
			r.Post("/clear", cartcontrollers.CartClear(p.CartService, logg))
		})
	})

	return r
}
