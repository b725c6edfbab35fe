package dependencies

import (
	"context"

	"go.uber.org/fx"

	"github.com/looplj/objecthub/internal/authz"
	"github.com/looplj/objecthub/internal/log"
	"github.com/looplj/objecthub/internal/objects"
	"github.com/looplj/objecthub/internal/pkg/xcache"
	"github.com/looplj/objecthub/internal/server/biz"
	"github.com/looplj/objecthub/internal/server/param"
	"github.com/looplj/objecthub/internal/store"
)

var Module = fx.Module("dependencies",
	fx.Provide(log.New),
	fx.Provide(NewDB),
	fx.Provide(func(db *store.DB) biz.ObjectStore { return db }),
	fx.Provide(NewObjectCache),
	fx.Provide(objects.NewRegistry),
	fx.Provide(authz.NewAuthenticator),
	fx.Provide(param.NewDataObjectParamResolver),
	fx.Provide(func(resolver *param.DataObjectParamResolver) *param.Binder { return param.NewBinder(resolver) }),
)

// NewDB opens the database, migrates it on start and closes it on stop.
func NewDB(lc fx.Lifecycle, cfg store.Config) (*store.DB, error) {
	db, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return db.Migrate(ctx)
		},
		OnStop: func(ctx context.Context) error {
			if err := db.Close(); err != nil {
				log.Error(ctx, "db close error", log.Cause(err))
			}

			return nil
		},
	})

	return db, nil
}

func NewObjectCache(cfg xcache.Config) (xcache.Cache[store.Record], error) {
	return xcache.NewFromConfig[store.Record](context.Background(), cfg)
}
