package http

import (
	"context"

	http_router "github.com/FraserParlane/road-names/pkg/http/http-router"
	"github.com/FraserParlane/road-names/pkg/http/http-router/controllers"
	http_server "github.com/FraserParlane/road-names/pkg/http/server"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger

	g errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Wait blocks until the API goroutine exits.
func (s *Server) Wait() error {
	return s.g.Wait()
}

func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	renderService controllers.RenderService,

) (*Server, error) {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "120s")

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(log)

	s.g.Go(func() error {
		return server.Run(
			ctx, config, log, renderService,
		)
	})

	return s, nil
}
