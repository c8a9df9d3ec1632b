package configs

import "time"

// RateLimit configures the fixed-window limiter applied to /api routes.
// Requests set to 0 disables limiting.
type RateLimit struct {
	Requests int           `env:"REQUESTS" envDefault:"300"`
	Window   time.Duration `env:"WINDOW" envDefault:"1m"`
}
