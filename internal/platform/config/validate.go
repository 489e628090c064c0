package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Collection names are prefix + type name and must stay valid as SQLite
// table names and Redis key segments.
var collectionPrefixPattern = regexp.MustCompile(`^[a-z0-9_]*$`)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// problems collects every invalid setting so one run reports all of them.
type problems []error

func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed []string) {
	p.require(slices.Contains(allowed, got), "%s must be one of %s, got %q", key, strings.Join(allowed, ", "), got)
}

func (p *problems) breaker(key string, cb CircuitBreakerConfig) {
	p.require(cb.MaxFailures >= 1, "%s.max_failures must be >= 1, got %d", key, cb.MaxFailures)
	p.require(cb.Timeout > 0, "%s.timeout must be positive, got %s", key, cb.Timeout)
	p.require(cb.HalfOpenLimit >= 1, "%s.half_open_limit must be >= 1, got %d", key, cb.HalfOpenLimit)
}

// Validate reports every invalid setting, joined.
func (c *Config) Validate() error {
	var p problems

	s := c.Server
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.require(s.WriteTimeout > 0, "server.write_timeout must be positive")

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)

	st := c.Store
	switch st.Driver {
	case StoreMemory:
	case StoreSQLite:
		p.require(st.SQLitePath != "", "store.sqlite_path must be set for the sqlite driver")
	case StoreRedis:
		p.require(st.RedisAddr != "", "store.redis_addr must be set for the redis driver")
	default:
		p.oneOf("store.driver", st.Driver, []string{StoreMemory, StoreSQLite, StoreRedis})
	}
	p.require(collectionPrefixPattern.MatchString(st.CollectionPrefix),
		"store.collection_prefix must match [a-z0-9_]*, got %q", st.CollectionPrefix)
	p.breaker("store.circuit_breaker", st.CircuitBreaker)

	pub := c.Publisher
	switch pub.Driver {
	case PublisherLog:
	case PublisherWebhook:
		p.require(strings.HasPrefix(pub.WebhookPath, "/"), "publisher.webhook_path must start with '/', got %q", pub.WebhookPath)
	case PublisherRedis:
		p.require(pub.RedisAddr != "", "publisher.redis_addr must be set for the redis driver")
		p.require(pub.RedisChannel != "", "publisher.redis_channel must be set for the redis driver")
	default:
		p.oneOf("publisher.driver", pub.Driver, []string{PublisherLog, PublisherWebhook, PublisherRedis})
	}

	p.require(c.Lifecycle.BulkWorkers >= 1, "lifecycle.bulk_workers must be >= 1, got %d", c.Lifecycle.BulkWorkers)

	cl := c.Client
	p.require(cl.BaseURL != "", "client.base_url must be set")
	p.require(cl.Timeout > 0, "client.timeout must be positive")
	p.require(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.require(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.breaker("client.circuit_breaker", cl.CircuitBreaker)
	rl := cl.RateLimit
	p.require(rl.RequestsPerSecond >= 0, "client.rate_limit.requests_per_second must not be negative, got %g", rl.RequestsPerSecond)
	p.require(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when rate limiting, got %d", rl.BurstSize)

	if t := c.Telemetry; t.Enabled {
		p.oneOf("telemetry.exporter", t.Exporter, exporters)
		p.require(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must be set for the otlp exporter")
	}

	return errors.Join(p...)
}
