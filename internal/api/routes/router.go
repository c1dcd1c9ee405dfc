package routes

import (
	"net/http"

	"github.com/zinyando/salon-booking-api/internal/api/handlers"
	"github.com/zinyando/salon-booking-api/internal/api/middleware"
	"github.com/zinyando/salon-booking-api/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	catalogueHandler    *handlers.CatalogueHandler
	availabilityHandler *handlers.AvailabilityHandler
	bookingHandler      *handlers.BookingHandler
	chatHandler         *handlers.ChatHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	catalogueHandler *handlers.CatalogueHandler,
	availabilityHandler *handlers.AvailabilityHandler,
	bookingHandler *handlers.BookingHandler,
	chatHandler *handlers.ChatHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		catalogueHandler:    catalogueHandler,
		availabilityHandler: availabilityHandler,
		bookingHandler:      bookingHandler,
		chatHandler:         chatHandler,

		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Catalogue endpoint
	r.mux.HandleFunc("GET /services-catalogue", r.catalogueHandler.GetCatalogue)

	// Availability endpoint
	r.mux.HandleFunc("GET /availability", r.availabilityHandler.GetAvailability)

	// Booking endpoint
	r.mux.HandleFunc("POST /book", r.bookingHandler.CreateBooking)

	// Chat endpoint
	r.mux.HandleFunc("POST /chat", r.chatHandler.Chat)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.

	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
