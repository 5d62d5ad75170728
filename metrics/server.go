package metrics

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/CoreumFoundation/coreum-tools/pkg/parallel"
	"github.com/CoreumFoundation/xrpl-tx-examples/logger"
)

const metricsPath = "/metrics"

// ServerConfig is metric server config.
type ServerConfig struct {
	ListenAddress     string
	ReadHeaderTimeout time.Duration
}

// DefaultServerConfig return default ServerConfig.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		ListenAddress:     "localhost:9090",
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Server is metric server.
type Server struct {
	cfg      ServerConfig
	log      logger.Logger
	registry *Registry
}

// NewServer returns new instance of the Server.
func NewServer(cfg ServerConfig, log logger.Logger, registry *Registry) *Server {
	return &Server{
		cfg:      cfg,
		log:      log,
		registry: registry,
	}
}

// Handler returns the http handler serving the registry metrics.
func (s *Server) Handler() (http.Handler, error) {
	registry := prometheus.NewRegistry()
	if err := s.registry.Register(registry); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(metricsPath, promhttp.InstrumentMetricHandler(
		registry, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	))

	return mux, nil
}

// Start starts metric server.
func (s *Server) Start(ctx context.Context) error {
	handler, err := s.Handler()
	if err != nil {
		return err
	}

	l, err := net.Listen("tcp", s.cfg.ListenAddress)
	if err != nil {
		return errors.Wrapf(err, "metric server listener failed, address:%s", s.cfg.ListenAddress)
	}
	defer l.Close()

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}
	s.log.Info(ctx, "Starting metric server", zap.String("address", l.Addr().String()+metricsPath))

	err = parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		spawn("server", parallel.Exit, func(ctx context.Context) error {
			if err := server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return errors.Wrap(err, "metric server exited")
			}
			return ctx.Err()
		})
		spawn("close", parallel.Exit, func(ctx context.Context) error {
			<-ctx.Done()
			server.Close()
			return ctx.Err()
		})
		return nil
	})

	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
