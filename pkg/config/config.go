package config

import (
	"net"
	"strconv"
	"time"
)

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"8080"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[ledger]"`
}

// RateLimit configures the per-client request limiter. When RedisURL is set
// the counters are kept in Redis so several ledger processes behind one load
// balancer share a budget; otherwise they live in process memory.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
	RedisURL    string        `envconfig:"REDIS_URL"`
	KeyPrefix   string        `envconfig:"KEY_PREFIX" default:"ledger:ratelimit:"`
}

type Ledger struct {
	// Seed creates the three reference accounts at startup.
	Seed bool `envconfig:"SEED" default:"true"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Ledger    *Ledger    `envconfig:"LEDGER"`
}

// Addr returns the host:port the HTTP server listens on.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
