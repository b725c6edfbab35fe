package fixtures

type Config struct {
	// File is loaded on server start when set.
	File string `conf:"file" yaml:"file" json:"file"`
}
