package config

const (
	defaultInboxDir     = "~/.local/share/irweave/inbox"
	defaultOutputDir    = "~/.local/share/irweave/output"
	defaultLogDir       = "~/.local/share/irweave/logs"
	defaultBrand        = "Brand"
	defaultModel        = "ItemX"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultPollInterval = 5
	defaultMaxAttempts  = 3
)

func defaultExtensions() []string {
	return []string{".txt", ".prc", ".ir"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			InboxDir:  defaultInboxDir,
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Conversion: Conversion{
			DefaultBrand: defaultBrand,
			DefaultModel: defaultModel,
			TidyLabels:   false,
			Extensions:   defaultExtensions(),
		},
		Workflow: Workflow{
			PollInterval: defaultPollInterval,
			MaxAttempts:  defaultMaxAttempts,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
