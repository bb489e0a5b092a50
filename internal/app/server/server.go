package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	entgenerated "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/event"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/config"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg         config.Config
	httpServer  *http.Server
	entClient   *entgenerated.Client
	redisClient *goredis.Client
	producer    *event.KafkaProducer
	tracerStop  TracerShutdown
	logger      *zap.Logger
}

// NewServer constructs a Server from the provided dependencies.
func NewServer(
	cfg config.Config,
	handler http.Handler,
	entClient *entgenerated.Client,
	redisClient *goredis.Client,
	producer *event.KafkaProducer,
	tracerStop TracerShutdown,
	logger *zap.Logger,
) *Server {
	return &Server{
		cfg: cfg,
		httpServer: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: handler,
		},
		entClient:   entClient,
		redisClient: redisClient,
		producer:    producer,
		tracerStop:  tracerStop,
		logger:      logger,
	}
}

// Run starts the HTTP server and blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("http server listening", zap.String("address", s.cfg.HTTPAddress))
		if err := s.httpServer.ListenAndServe(); err != nil {
			errCh <- err
		} else {
			close(errCh)
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(shutdownCtx)
		s.close(shutdownCtx)
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.close(shutdownCtx)
			return err
		}
		return nil
	}
}

func (s *Server) close(ctx context.Context) {
	if err := s.producer.Close(); err != nil {
		s.logger.Warn("kafka producer close failed", zap.Error(err))
	}
	if err := s.redisClient.Close(); err != nil {
		s.logger.Warn("redis close failed", zap.Error(err))
	}
	if err := s.entClient.Close(); err != nil {
		s.logger.Warn("ent close failed", zap.Error(err))
	}
	if err := s.tracerStop(ctx); err != nil {
		s.logger.Warn("tracer shutdown failed", zap.Error(err))
	}
	_ = s.logger.Sync()
}
