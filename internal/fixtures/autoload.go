package fixtures

import (
	"context"

	"github.com/spf13/afero"
	"go.uber.org/fx"

	"github.com/looplj/objecthub/internal/authz"
	"github.com/looplj/objecthub/internal/objects"
	"github.com/looplj/objecthub/internal/server/biz"
)

// Autoload seeds the configured fixture file once the database is migrated.
func Autoload(lc fx.Lifecycle, cfg Config, registry *objects.Registry, service *biz.ObjectService) {
	if cfg.File == "" {
		return
	}

	loader := NewLoader(afero.NewOsFs(), registry, service)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := loader.Load(authz.NewSystemContext(ctx), cfg.File)
			return err
		},
	})
}
