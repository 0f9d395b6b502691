package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/superflow-dev/superflow-extension/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/superflow-dev/superflow-extension/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/superflow-dev/superflow-extension/internal/version.Date={{.Date}}
)
