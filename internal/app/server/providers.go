package server

import (
	protovalidate "buf.build/go/protovalidate"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/event"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/config"
)

// NewConfig loads the runtime configuration for dependency injection.
func NewConfig() (config.Config, error) {
	return config.Load()
}

// NewLogger constructs the production zap logger.
func NewLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

// NewRedisClient connects to the Redis instance backing the course cache
// and aggregate locks.
func NewRedisClient(cfg config.Config) *goredis.Client {
	return goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddress})
}

// NewKafkaProducer constructs the event producer publishing domain events.
func NewKafkaProducer(cfg config.Config, logger *zap.Logger) *event.KafkaProducer {
	return event.NewKafkaProducer(cfg.KafkaBrokers, logger)
}

// NewProtoValidator constructs a protovalidate Validator for request validation.
func NewProtoValidator() (protovalidate.Validator, error) {
	return protovalidate.New()
}
