// Package config centralises configuration parsing for the extracurricular activities service.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config captures runtime configuration values for the service.
type Config struct {
	HTTPAddress     string
	MetricsAddress  string // Listen address for the rostermon metrics server.
	StaticDir       string
	KafkaBrokers    []string
	RosterTopic     string
	EventsEnabled   bool
	ConsumerGroupID string
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		MetricsAddress:  getEnv("METRICS_ADDRESS", ":9090"),
		StaticDir:       getEnv("STATIC_DIR", "web/static"),
		RosterTopic:     getEnv("ROSTER_TOPIC", "roster_events"),
		EventsEnabled:   getBoolEnv("ROSTER_EVENTS_ENABLED", false),
		ConsumerGroupID: getEnv("CONSUMER_GROUP_ID", "rostermon"),
	}

	brokers := getEnv("KAFKA_BROKERS", "kafka:9092")
	cfg.KafkaBrokers = splitAndTrim(brokers)
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
