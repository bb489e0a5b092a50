package config

import "testing"

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/courses")
	t.Setenv("HTTP_ADDRESS", "")
	t.Setenv("REDIS_ADDRESS", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("SERVICE_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPAddress != ":8080" {
		t.Fatalf("expected default http address, got %q", cfg.HTTPAddress)
	}
	if cfg.RedisAddress != "localhost:6379" {
		t.Fatalf("expected default redis address, got %q", cfg.RedisAddress)
	}
	if len(cfg.KafkaBrokers) != 1 || cfg.KafkaBrokers[0] != "localhost:9092" {
		t.Fatalf("expected default kafka brokers, got %#v", cfg.KafkaBrokers)
	}
	if cfg.ServiceName != "course-service" {
		t.Fatalf("expected default service name, got %q", cfg.ServiceName)
	}
}

func TestLoadSplitsKafkaBrokers(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/courses")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092 ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "broker-2:9092" {
		t.Fatalf("expected two brokers, got %#v", cfg.KafkaBrokers)
	}
}
