package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxRequestBody caps request bodies: the largest photo plus form fields.
const maxRequestBody = 11 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	router.Use(middleware.RequestSize(maxRequestBody))

	// routes without identity
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/telegram", h.loginTelegram)
		r.Get("/api/interests", h.listInterests)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes acting on behalf of a user
	router.Group(func(r chi.Router) {
		r.Use(h.identity)

		r.Post("/api/connections", h.createConnection)
		r.Get("/api/connections", h.listIncomingConnections)
		r.Put("/api/connections/{id}", h.respondToConnection)

		r.Get("/api/profiles", h.getFeed)
		r.Post("/api/profiles", h.createProfile)
		r.Get("/api/profiles/me", h.getOwnProfile)
		r.Put("/api/profiles/me", h.updateOwnProfile)
		r.Get("/api/profiles/{userId}", h.getProfile)
	})

	if h.devRoutes {
		router.Group(func(r chi.Router) {
			r.Get("/api/dev/users", h.listUsers)
			r.Put("/api/dev/users/{id}/verify", h.verifyUser)
		})
	}

	if h.uploadsDir != "" {
		router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadsDir))))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
