package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"quick_heal/database/handler"
	"quick_heal/middleware"
)

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

type Server struct {
	chi.Router
	server *http.Server
}

func SetupRoutes(h *handler.Handler, jwtSecret []byte) *Server {
	router := chi.NewRouter()
	auth := middleware.Auth(jwtSecret)

	router.Route("/api", func(api chi.Router) {
		api.Route("/product", func(product chi.Router) {
			product.Get("/", h.GetAllProduct)
			product.Get("/{id}", h.GetProductById)
		})
		api.Post("/appointment", h.RequestAppointment)

		api.Route("/user", func(user chi.Router) {
			user.Use(auth)
			user.Use(middleware.UserMiddleware)
			user.Group(UserRoute(h))
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(auth)
			admin.Use(middleware.AdminMiddleware)
			admin.Group(AdminRoute(h))
		})
	})

	return &Server{
		Router: router,
	}
}

func (srv *Server) Run(port string) error {
	srv.server = &http.Server{
		Addr:              port,
		Handler:           srv.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return srv.server.ListenAndServe()
}

func (srv *Server) Stop(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.server.Shutdown(ctx)
}
