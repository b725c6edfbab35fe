package authz

import "time"

type Config struct {
	// SecretKey signs and verifies HS256 tokens. Auth is disabled when empty.
	SecretKey string        `conf:"secret_key" yaml:"secret_key" json:"secret_key"`
	Issuer    string        `conf:"issuer" yaml:"issuer" json:"issuer"`
	TokenTTL  time.Duration `conf:"token_ttl" yaml:"token_ttl" json:"token_ttl"`

	// AdminPathPrefix marks request paths that always count as admin element requests.
	AdminPathPrefix string `conf:"admin_path_prefix" yaml:"admin_path_prefix" json:"admin_path_prefix"`
}

func (c Config) Enabled() bool {
	return c.SecretKey != ""
}
