package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/ijalalfrz/flight-connection-service/internal/app/config"
	"github.com/ijalalfrz/flight-connection-service/internal/app/dto"
	"github.com/ijalalfrz/flight-connection-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/flight-connection-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(cfg.HTTP.CORSOrigins),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Get("/flight/interconnections", httptransport.MakeHandlerFunc(
			endpts.SearchEndpoint.Search,
			httptransport.DecodeQuery[dto.SearchCriteria],
			httptransport.ResponseWithBody,
		))

		router.Post("/flights/search", httptransport.MakeHandlerFunc(
			endpts.SearchEndpoint.Search,
			httptransport.DecodeRequest[dto.SearchCriteria],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
