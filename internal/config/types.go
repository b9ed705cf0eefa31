package config

// Config holds all configuration for the application.
type Config struct {
	DBName      string
	Driver      string
	Turso       TursoConfig
	Log         LogConfig
	MetricsFile string
	ImportFile  string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// LogConfig controls where and how verbosely the tools log.
// An empty File keeps logs on stderr.
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
}
