package config

import (
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyDBName         = "DB_NAME"
	KeyDriver         = "DB_DRIVER"
	KeyTursoURL       = "TURSO_PRIMARY_URL"
	KeyTursoToken     = "TURSO_AUTH_TOKEN"
	KeyLogLevel       = "LOG_LEVEL"
	KeyLogFile        = "LOG_FILE"
	KeyLogMaxSizeMB   = "LOG_MAX_SIZE_MB"
	KeyLogMaxBackups  = "LOG_MAX_BACKUPS"
	KeyMetricsFile    = "METRICS_FILE"
	KeyImportFile     = "IMPORT_FILE"
	DefaultDBName     = "football_academy.db"
	DefaultImportFile = "opa_database_content.txt"
)

// flagKeys maps command line flag names onto configuration keys.
var flagKeys = map[string]string{
	"db":           KeyDBName,
	"driver":       KeyDriver,
	"log-level":    KeyLogLevel,
	"log-file":     KeyLogFile,
	"metrics-file": KeyMetricsFile,
	"file":         KeyImportFile,
}

// Load reads configuration from environment variables and .env file.
// Flags that were set explicitly on any of the given flag sets take precedence.
func Load(flagSets ...*pflag.FlagSet) Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault(KeyDBName, DefaultDBName)
	v.SetDefault(KeyDriver, "sqlite3")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogMaxSizeMB, 10)
	v.SetDefault(KeyLogMaxBackups, 3)
	v.SetDefault(KeyImportFile, DefaultImportFile)

	for _, fs := range flagSets {
		if fs == nil {
			continue
		}
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					log.Warn("Failed to bind flag", "flag", name, "error", err)
				}
			}
		}
	}

	return Config{
		DBName: v.GetString(KeyDBName),
		Driver: v.GetString(KeyDriver),
		Turso: TursoConfig{
			PrimaryURL: v.GetString(KeyTursoURL),
			AuthToken:  v.GetString(KeyTursoToken),
		},
		Log: LogConfig{
			Level:      v.GetString(KeyLogLevel),
			File:       v.GetString(KeyLogFile),
			MaxSizeMB:  v.GetInt(KeyLogMaxSizeMB),
			MaxBackups: v.GetInt(KeyLogMaxBackups),
		},
		MetricsFile: v.GetString(KeyMetricsFile),
		ImportFile:  v.GetString(KeyImportFile),
	}
}
