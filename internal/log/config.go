package log

// Config configures the global logger.
type Config struct {
	// Name is added to every entry as the logger name.
	Name string `conf:"name" yaml:"name" json:"name"`

	// Debug enables caller and stacktrace annotations.
	Debug bool `conf:"debug" yaml:"debug" json:"debug"`

	// Level is one of debug, info, warn, error. Defaults to info.
	Level string `conf:"level" yaml:"level" json:"level"`

	// Encoding is json or console. Defaults to json.
	Encoding string `conf:"encoding" yaml:"encoding" json:"encoding"`

	// Output is stdio or file. Defaults to stdio.
	Output string `conf:"output" yaml:"output" json:"output"`

	File FileConfig `conf:"file" yaml:"file" json:"file"`
}

// FileConfig configures rotated file output.
type FileConfig struct {
	Path       string `conf:"path" yaml:"path" json:"path"`
	MaxSize    int    `conf:"max_size" yaml:"max_size" json:"max_size"`
	MaxAge     int    `conf:"max_age" yaml:"max_age" json:"max_age"`
	MaxBackups int    `conf:"max_backups" yaml:"max_backups" json:"max_backups"`
	Compress   bool   `conf:"compress" yaml:"compress" json:"compress"`
}
