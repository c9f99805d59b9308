package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/diagnosis/wallet-pass/internal/http/handlers/pass"
	mw "github.com/diagnosis/wallet-pass/pkg/middleware"
)

const ServiceName = "wallet-pass"

// New wires the public routes. The pass endpoint is served both at the
// server path and at the serverless-style /api path.
func New(h *pass.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.ServiceName(ServiceName))
	r.Use(mw.Logging)
	r.Use(mw.Recover)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS", "PATCH", "DELETE", "POST", "PUT"},
		AllowedHeaders: []string{
			"X-CSRF-Token", "X-Requested-With", "Accept", "Accept-Version", "Content-Length",
			"Content-MD5", "Content-Type", "Date", "X-Api-Version",
		},
		AllowCredentials:   true,
		MaxAge:             300,
		OptionsPassthrough: true,
	}))

	r.Use(mw.Health)

	r.NotFound(pass.NotFound)
	r.MethodNotAllowed(pass.MethodNotAllowed)

	r.Mount("/create-pass", h.Routes())
	r.Mount("/api/create-pass", h.Routes())

	return r
}
