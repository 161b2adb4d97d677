package config

const (
	defaultDataDir           = "~/.local/share/locflow"
	defaultLogDir            = "~/.local/share/locflow/logs"
	defaultExportDir         = "~/.local/share/locflow/exports"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultRateBudget            = 40
	defaultRateWindowSeconds     = 10
	defaultRequestTimeoutSeconds = 30
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Repository: Repository{
			RateBudget:            defaultRateBudget,
			RateWindowSeconds:     defaultRateWindowSeconds,
			RequestTimeoutSeconds: defaultRequestTimeoutSeconds,
		},
		Paths: Paths{
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
			ExportDir: defaultExportDir,
		},
		Export: Export{
			Content: true,
			Assets:  true,
		},
		Import: Import{
			CreateRecords: true,
			Backup:        true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
