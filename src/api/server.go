package api

import (
	"context"
	"net/http"
	"time"

	"github.com/asadas-tsadiglo/tank-telemetry/src/api/routes"
	"github.com/asadas-tsadiglo/tank-telemetry/src/control"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	router *routes.Router
	server *http.Server
}

func DefaultApiServer(store routes.Store, controls *control.State, engine routes.Engine) *Server {
	return &Server{router: routes.NewRouter(store, controls, engine)}
}

// Run blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router.Handler(),
	}

	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// Shutdown drains in-flight requests before stopping the listener.
func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}
