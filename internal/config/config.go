package config

import (
	"fmt"
	"os"
	"strings"
)

// Config captures the runtime configuration for the service.
type Config struct {
	HTTPAddress  string
	DatabaseURL  string
	RedisAddress string
	KafkaBrokers []string
	ServiceName  string
	OTLPEndpoint string
}

// Load reads configuration from the environment with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddress:  valueOrDefault(os.Getenv("HTTP_ADDRESS"), ":8080"),
		DatabaseURL:  valueOrDefault(os.Getenv("DATABASE_URL"), ""),
		RedisAddress: valueOrDefault(os.Getenv("REDIS_ADDRESS"), "localhost:6379"),
		KafkaBrokers: splitList(valueOrDefault(os.Getenv("KAFKA_BROKERS"), "localhost:9092")),
		ServiceName:  valueOrDefault(os.Getenv("SERVICE_NAME"), "course-service"),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL must be provided")
	}

	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
