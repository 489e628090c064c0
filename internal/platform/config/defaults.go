package config

import "maps"

// breakerDefaults is shared by the document store guard and the event
// gateway client.
func breakerDefaults(prefix string) map[string]any {
	return map[string]any{
		prefix + ".max_failures":    5,
		prefix + ".timeout":         "30s",
		prefix + ".half_open_limit": 1,
	}
}

// defaults lets a profile omit any key. Values are koanf-decodable, so
// durations stay strings.
func defaults() map[string]any {
	d := map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          8080,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		// In-memory storage keeps a bare checkout runnable.
		"store.driver":            StoreMemory,
		"store.sqlite_path":       "data/storefront.db",
		"store.redis_addr":        "localhost:6379",
		"store.collection_prefix": "storefront_",

		"publisher.driver":        PublisherLog,
		"publisher.webhook_path":  "/events",
		"publisher.redis_addr":    "localhost:6379",
		"publisher.redis_channel": "storefront.events",

		"lifecycle.bulk_workers": 4,

		"client.base_url":                       "http://localhost:8081",
		"client.timeout":                        "30s",
		"client.retry.max_attempts":             3,
		"client.retry.initial_interval":         "100ms",
		"client.retry.max_interval":             "10s",
		"client.retry.multiplier":               2.0,
		"client.rate_limit.requests_per_second": 0.0,
		"client.rate_limit.burst_size":          10,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "storefront-core",
	}
	for _, prefix := range []string{"store.circuit_breaker", "client.circuit_breaker"} {
		maps.Copy(d, breakerDefaults(prefix))
	}
	return d
}
