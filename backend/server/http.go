package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"news-app/backend/global"
)

type HTTPServer struct {
	srv *http.Server
}

func NewHTTPServer(host string, port int, handler http.Handler) *HTTPServer {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	return &HTTPServer{srv: &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}}
}

func (s *HTTPServer) Addr() string { return s.srv.Addr }

// Start listens in the background. Listen errors other than a clean
// shutdown are sent on the returned channel.
func (s *HTTPServer) Start() <-chan error {
	errc := make(chan error, 1)
	go func() {
		global.Logger.Info().Str("addr", s.srv.Addr).Msg("http server listening")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()
	return errc
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
