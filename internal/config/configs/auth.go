package configs

import "time"

// Auth configures bearer token verification. Tokens are HS256 JWTs signed
// with Secret and issued by Issuer.
type Auth struct {
	Secret string `env:"SECRET" envDefault:"adops-dev-secret"`
	Issuer string `env:"ISSUER" envDefault:"adops"`
	// TokenTTL is only used by cmd/devtoken.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}
