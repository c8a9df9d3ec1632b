package configs

// Ingest bounds CSV uploads.
type Ingest struct {
	MaxBytes    int64 `env:"MAX_BYTES" envDefault:"10485760"`
	MaxRows     int   `env:"MAX_ROWS" envDefault:"50000"`
	PreviewRows int   `env:"PREVIEW_ROWS" envDefault:"5"`
	MaxIssues   int   `env:"MAX_ISSUES" envDefault:"200"`
}
