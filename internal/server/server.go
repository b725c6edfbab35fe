package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/looplj/objecthub/internal/authz"
	"github.com/looplj/objecthub/internal/fixtures"
	"github.com/looplj/objecthub/internal/log"
	"github.com/looplj/objecthub/internal/server/api"
	"github.com/looplj/objecthub/internal/server/biz"
	"github.com/looplj/objecthub/internal/server/dependencies"
	"github.com/looplj/objecthub/internal/server/middleware"
	"github.com/looplj/objecthub/internal/server/param"
	"github.com/looplj/objecthub/internal/tracing"
)

func New(config Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())

	return &Server{
		Config: config,
		Engine: engine,
	}
}

type Server struct {
	*gin.Engine

	Config Config
	server *http.Server
	addr   string
}

func (srv *Server) Run() error {
	log.Info(context.Background(), "run server",
		log.String("name", srv.Config.Name),
		log.String("host", srv.Config.Host),
		log.Int("port", srv.Config.Port),
	)
	addr := fmt.Sprintf("%s:%d", srv.Config.Host, srv.Config.Port)
	srv.server = &http.Server{
		Addr:         addr,
		Handler:      srv.Engine,
		ReadTimeout:  srv.Config.ReadTimeout,
		WriteTimeout: srv.Config.RequestTimeout,
	}
	srv.addr = addr

	err := srv.server.ListenAndServe()
	if err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	}

	return nil
}

func (srv *Server) Shutdown(ctx context.Context) error {
	if srv.server == nil {
		return nil
	}

	return srv.server.Shutdown(ctx)
}

// NewAdminChecker recognises admin requests under the admin prefix of the served base path.
func NewAdminChecker(auth authz.Config, config Config) param.AdminChecker {
	return authz.NewDefaultAdminChecker(auth, config.BasePath)
}

// Options returns the fx options that assemble the server without starting it.
func Options(opts ...fx.Option) fx.Option {
	return fx.Options(
		append([]fx.Option{
			fx.Provide(New),
			fx.Provide(NewAdminChecker),
			dependencies.Module,
			biz.Module,
			api.Module,
			fx.Invoke(func(cfg log.Config) {
				log.SetGlobalConfig(cfg)
				tracing.SetupLogger(log.GetGlobalLogger())
			}),
			fx.Invoke(SetupRoutes),
			fx.Invoke(fixtures.Autoload),
		}, opts...)...,
	)
}

func Run(opts ...fx.Option) {
	app := fx.New(
		fx.NopLogger,
		Options(opts...),
	)
	app.Run()
}
