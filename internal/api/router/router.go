package router

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	m "github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, userRepo db.IUserRepository, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.IdentityMiddleware(userRepo))
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"healthy","service":"storefront"}`))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", server.AuthHandler.Login)
			r.Post("/register", server.AuthHandler.Register)
			r.With(m.RequireAdmin).Get("/users", server.AuthHandler.ListUsers)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ProductHandler.List)
			r.Get("/{id}", server.ProductHandler.Get)
			r.With(m.RequireAdmin).Post("/", server.ProductHandler.Create)
			r.With(m.RequireAdmin).Put("/{id}", server.ProductHandler.Update)
			r.With(m.RequireAdmin).Delete("/{id}", server.ProductHandler.Delete)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", server.CartHandler.Get)
			r.Post("/add", server.CartHandler.Add)
			r.Put("/update", server.CartHandler.Update)
			r.Delete("/remove", server.CartHandler.Remove)
			r.Delete("/clear", server.CartHandler.Clear)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/checkout", server.OrderHandler.Checkout)
			r.Get("/history", server.OrderHandler.History)
			r.Get("/{id}", server.OrderHandler.Get)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(m.RequireAdmin)
			r.Get("/orders", server.AdminHandler.Orders)
			r.Put("/orders/{id}/status", server.AdminHandler.UpdateOrderStatus)
			r.Get("/dashboard", server.AdminHandler.Dashboard)
		})
	})

	return r
}
