package log

// Config drives Init. Zero values fall back to the defaults below.
type Config struct {
	Level     string           `mapstructure:"level" yaml:"level"`
	Pattern   string           `mapstructure:"pattern" yaml:"pattern"`
	Time      string           `mapstructure:"time" yaml:"time"`
	Appenders []AppenderConfig `mapstructure:"appenders" yaml:"appenders"`
}

// AppenderConfig selects one output target. Type is "console" or "file";
// Options are decoded per appender type.
type AppenderConfig struct {
	Type    string                 `mapstructure:"type" yaml:"type"`
	Options map[string]interface{} `mapstructure:"options" yaml:"options,omitempty"`
}

// FileAppenderOptions configure the rotating file appender.
type FileAppenderOptions struct {
	Filename   string `mapstructure:"filename" yaml:"filename"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`       // MB
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`         // days
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"` // count
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

func defaultConfig() Config {
	return Config{
		Level:   "info",
		Pattern: "%time [%level] %msg %field\n",
		Time:    "2006-01-02 15:04:05.000",
	}
}

// withDefaults fills unset fields from defaultConfig.
func (c Config) withDefaults() Config {
	def := defaultConfig()
	if c.Level == "" {
		c.Level = def.Level
	}
	if c.Pattern == "" {
		c.Pattern = def.Pattern
	}
	if c.Time == "" {
		c.Time = def.Time
	}
	return c
}
