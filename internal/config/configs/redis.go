package configs

// Redis configures the Redis client used for sessions, studio preferences
// and rate limiting.
type Redis struct {
	URL string `env:"URL" envDefault:"redis://localhost:6379/0"`
}
