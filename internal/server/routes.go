package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/looplj/objecthub/internal/authz"
	"github.com/looplj/objecthub/internal/objects"
	"github.com/looplj/objecthub/internal/server/api"
	"github.com/looplj/objecthub/internal/server/middleware"
	"github.com/looplj/objecthub/internal/server/param"
)

type Handlers struct {
	fx.In

	Objects *api.ObjectHandlers
	System  *api.SystemHandlers
}

type Services struct {
	fx.In

	Binder        *param.Binder
	Authenticator *authz.Authenticator
}

func SetupRoutes(server *Server, handlers Handlers, services Services) {
	server.Use(middleware.AccessLog())
	server.Use(middleware.WithLoggingTracing(server.Config.Trace))
	server.Use(middleware.WithMetrics())

	// Setup CORS middleware at server level if enabled
	if server.Config.CORS.Enabled {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = server.Config.CORS.AllowedOrigins
		corsConfig.AllowMethods = server.Config.CORS.AllowedMethods
		corsConfig.AllowHeaders = server.Config.CORS.AllowedHeaders
		corsConfig.ExposeHeaders = server.Config.CORS.ExposedHeaders
		corsConfig.AllowCredentials = server.Config.CORS.AllowCredentials
		corsConfig.MaxAge = server.Config.CORS.MaxAge

		corsHandler := cors.New(corsConfig)
		server.Use(corsHandler)
		server.OPTIONS("/*any", corsHandler)
	}

	bind := func(args ...param.Argument) gin.HandlerFunc {
		return middleware.BindArguments(services.Binder, args...)
	}

	root := server.Group(server.Config.BasePath, middleware.WithTimeout(server.Config.RequestTimeout))

	publicGroup := root.Group("")
	{
		// Health check endpoint - no authentication required
		publicGroup.GET("/health", handlers.System.Health)
		publicGroup.GET("/version", handlers.System.Version)
	}

	objectGroup := root.Group("", middleware.WithJWTAuth(services.Authenticator, false))
	{
		objectGroup.GET("/articles/:article", bind(param.Arg[*objects.Article](api.ArgArticle)), handlers.Objects.GetArticle)
		objectGroup.GET("/products/:product", bind(param.Arg[*objects.Product](api.ArgProduct)), handlers.Objects.GetProduct)
		objectGroup.GET("/folders/:folder", bind(param.Arg[*objects.Folder](api.ArgFolder)), handlers.Objects.GetFolder)

		// Drafts are shared by link, unpublished articles are visible to anyone.
		objectGroup.GET("/drafts/articles/:article",
			bind(param.Arg[*objects.Article](api.ArgArticle).WithOptions(param.ForClass[*objects.Article]().AllowUnpublished())),
			handlers.Objects.GetArticle,
		)

		objectGroup.GET("/content/articles/:content",
			bind(param.Arg[objects.Content](api.ArgContent).WithOptions(param.ForClass[*objects.Article]())),
			handlers.Objects.GetContent,
		)
		objectGroup.GET("/content/folders/:content",
			bind(param.Arg[objects.Content](api.ArgContent).WithOptions(param.ForClass[*objects.Folder]())),
			handlers.Objects.GetContent,
		)

		feed := bind(param.Arg[*objects.Folder](api.ArgFolder).AsNullable())
		objectGroup.GET("/feed", feed, handlers.Objects.GetFeed)
		objectGroup.GET("/feed/:folder", feed, handlers.Objects.GetFeed)
	}

	adminGroup := root.Group("/admin", middleware.WithJWTAuth(services.Authenticator, true))
	{
		adminGroup.GET("/articles/:article", bind(param.Arg[*objects.Article](api.ArgArticle)), handlers.Objects.GetArticle)
		adminGroup.GET("/products/:product", bind(param.Arg[*objects.Product](api.ArgProduct)), handlers.Objects.GetProduct)
	}
}
