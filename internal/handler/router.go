package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Auth      *AuthHandler
	Movies    *MovieHandler
	Reviews   *ReviewHandler
	JWTSecret string
}

// NewRouter mounts public, authenticated and admin-only route groups.
func NewRouter(d Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", Health)

	r.Route("/api", func(r chi.Router) {
		// public
		r.Post("/auth/signup", d.Auth.Signup)
		r.Post("/auth/signin", d.Auth.Signin)

		r.Get("/movies", d.Movies.List)
		r.Get("/movies/{id}", d.Movies.Get)

		// authenticated
		r.Group(func(r chi.Router) {
			r.Use(JWTAuth(d.JWTSecret))

			r.Post("/reviews/{movieId}", d.Reviews.Add)

			// admin only
			r.Group(func(r chi.Router) {
				r.Use(AdminOnly())

				r.Post("/movies", d.Movies.Create)
				r.Put("/movies/{id}", d.Movies.Update)
				r.Delete("/movies/{id}", d.Movies.Delete)
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
