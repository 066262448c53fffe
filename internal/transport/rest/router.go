package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/tusharpolymers/onboard-portal/internal/announcement"
	"github.com/tusharpolymers/onboard-portal/internal/auth"
	"github.com/tusharpolymers/onboard-portal/internal/chatbot"
	"github.com/tusharpolymers/onboard-portal/internal/document"
	"github.com/tusharpolymers/onboard-portal/internal/salary"
	"github.com/tusharpolymers/onboard-portal/internal/task"
	"github.com/tusharpolymers/onboard-portal/internal/transport/middleware"
	"github.com/tusharpolymers/onboard-portal/internal/transport/swagger"
	"github.com/tusharpolymers/onboard-portal/internal/user"
)

// Handlers bundles every feature handler the router mounts.
type Handlers struct {
	Auth         *auth.Handler
	User         *user.Handler
	Task         *task.Handler
	Document     *document.Handler
	Chatbot      *chatbot.Handler
	Salary       *salary.Handler
	Announcement *announcement.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, uploadDir, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.NewCORS(allowedOrigins))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Uploaded documents are served statically so the dashboard can link
	// straight to a stored file.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
	router.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		fileServer.ServeHTTP(w, r)
	})

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		if h.Auth != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", h.Auth.Login)
				sr.Post("/refresh", h.Auth.RefreshToken)
				sr.Post("/logout", h.Auth.Logout)
			})
		}

		// Registration is public so new hires can create their account
		if h.User != nil {
			r.Post("/users/register", h.User.Register)
		}

		if h.Auth != nil {
			// Protected routes that require authentication
			r.Group(func(pr chi.Router) {
				pr.Use(h.Auth.AuthMiddleware)

				// Current user
				if h.User != nil {
					pr.Get("/users/profile", h.User.GetProfile)
				}

				// Task routes
				if h.Task != nil {
					pr.Route("/tasks", func(tr chi.Router) {
						tr.Get("/", h.Task.GetTasks)        // GET /tasks
						tr.Post("/", h.Task.CreateTask)     // POST /tasks
						tr.Put("/{id}", h.Task.UpdateTask)  // PUT /tasks/:id
					})
				}

				// Document routes
				if h.Document != nil {
					pr.Route("/documents", func(dr chi.Router) {
						dr.Get("/", h.Document.List)    // GET /documents
						dr.Post("/", h.Document.Upload) // POST /documents
					})
				}

				// Chatbot
				if h.Chatbot != nil {
					pr.Post("/chatbot/ask", h.Chatbot.Ask)
				}

				// Salary statement
				if h.Salary != nil {
					pr.Get("/salary", h.Salary.GetStatement)
				}

				// Announcements
				if h.Announcement != nil {
					pr.Get("/announcements", h.Announcement.List)
				}
			})
		}
	})
}
