package configs

// Storage configures the S3-compatible bucket where raw uploads are
// archived. Archival is disabled when Endpoint is empty.
type Storage struct {
	Endpoint  string `env:"ENDPOINT" envDefault:""`
	AccessKey string `env:"ACCESS_KEY" envDefault:""`
	SecretKey string `env:"SECRET_KEY" envDefault:""`
	Bucket    string `env:"BUCKET" envDefault:"adops-uploads"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// Enabled reports whether object storage is configured.
func (s Storage) Enabled() bool {
	return s.Endpoint != ""
}
