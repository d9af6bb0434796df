package routes

import (
	"net/http"
	"time"

	"github.com/Dosada05/bracket-engine/handlers"
	"github.com/Dosada05/bracket-engine/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	JWTSecret      []byte
	AllowedOrigins []string
}

// Roles allowed to publish bracket exports.
var publisherRoles = []string{"organizer", "admin"}

func SetupRoutes(
	router chi.Router,
	bracketHandler *handlers.BracketHandler,
	webSocketHandler *handlers.WebSocketHandler,
	opts Options,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", bracketHandler.Health)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// The websocket route stays outside the timeout middleware.
	router.Get("/ws/brackets/{room}", webSocketHandler.ServeWs)

	router.Route("/brackets", func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(15 * time.Second))

		r.Post("/preview", bracketHandler.PreviewBrackets)
		r.Post("/{format}", bracketHandler.GenerateBracket)
		r.Post("/{format}/export", bracketHandler.ExportBracket)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(opts.JWTSecret))
			r.Use(middleware.Authorize(publisherRoles...))
			r.Post("/{format}/publish", bracketHandler.PublishBracket)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})
}
