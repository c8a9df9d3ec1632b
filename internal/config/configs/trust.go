package configs

// Trust configures the git repository holding trust documentation versions.
type Trust struct {
	RepoDir string `env:"REPO_DIR" envDefault:"./data/trust"`
}
