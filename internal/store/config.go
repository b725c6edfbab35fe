package store

type Config struct {
	// Dialect is one of postgres, mysql, sqlite3 (and their aliases).
	Dialect string `conf:"dialect" yaml:"dialect" json:"dialect"`
	DSN     string `conf:"dsn" yaml:"dsn" json:"dsn"`
	Debug   bool   `conf:"debug" yaml:"debug" json:"debug"`

	// MaxOpenConns limits the pool size, zero means unlimited.
	MaxOpenConns int `conf:"max_open_conns" yaml:"max_open_conns" json:"max_open_conns"`
	MaxIdleConns int `conf:"max_idle_conns" yaml:"max_idle_conns" json:"max_idle_conns"`
}
