package main

import (
	"os"
	"strings"
)

// Config holds the settings read from the environment (and .env).
type Config struct {
	LogLevel  string
	LogFormat string

	// MetricsPushURL is the Prometheus pushgateway that receives the
	// counters of a run. Empty disables pushing.
	MetricsPushURL string
	MetricsJob     string

	// AMQPURL enables publishing each rendered inbox record. Empty disables
	// the queue.
	AMQPURL   string
	AMQPQueue string

	// SMSC is the service centre label written into inbox records.
	SMSC string
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

// LoadConfig reads Config from the process environment.
func LoadConfig() Config {
	return Config{
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFormat:      getenv("LOG_FORMAT", "text"),
		MetricsPushURL: getenv("METRICS_PUSH_URL", ""),
		MetricsJob:     getenv("METRICS_JOB", "smsjson"),
		AMQPURL:        getenv("AMQP_URL", ""),
		AMQPQueue:      getenv("AMQP_QUEUE", "sms_inbox"),
		SMSC:           getenv("SMSJSON_SMSC", ""),
	}
}
