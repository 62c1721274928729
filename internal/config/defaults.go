package config

const (
	defaultDataDir     = "~/.local/share/stenocodec/data"
	defaultOutDir      = "~/.local/share/stenocodec/out"
	defaultLogDir      = "~/.local/share/stenocodec/logs"
	defaultScheme      = "direct"
	defaultOnUnknown   = "placeholder"
	defaultPlaceholder = "�"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			OutDir:  defaultOutDir,
			LogDir:  defaultLogDir,
		},
		Codec: Codec{
			Scheme:      defaultScheme,
			OnUnknown:   defaultOnUnknown,
			Placeholder: defaultPlaceholder,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
