package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/redis/go-redis/v9"
)

// durationSeconds reads "10s", "5m" or a bare number of seconds ("10" is 10s).
// Surrounding quotes left by some dashboards are ignored. SetValue satisfies cleanenv.Setter.
type durationSeconds time.Duration

func (d *durationSeconds) SetValue(data string) error {
	s := strings.Trim(strings.TrimSpace(data), `"'`)
	if s == "" {
		return fmt.Errorf("empty duration")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = durationSeconds(time.Duration(n) * time.Second)
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration must be like 10s, 5m or a number of seconds: %w", err)
	}
	*d = durationSeconds(v)
	return nil
}

var _ cleanenv.Setter = (*durationSeconds)(nil)

func (d durationSeconds) Duration() time.Duration { return time.Duration(d) }

// applyRedisURL lets REDIS_URL (redis:// or rediss://) override the discrete Redis settings.
func applyRedisURL(r *RedisConfig) error {
	if strings.TrimSpace(r.URL) == "" {
		return nil
	}
	opts, err := redis.ParseURL(strings.TrimSpace(r.URL))
	if err != nil {
		return fmt.Errorf("REDIS_URL: %w", err)
	}
	r.Addr = opts.Addr
	r.Username = opts.Username
	r.Password = opts.Password
	r.DB = opts.DB
	r.TLS = opts.TLSConfig != nil
	return nil
}
