package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/andreazorzetto/yh/highlight"
	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/afero"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"gopkg.in/yaml.v3"

	sdk "go.opentelemetry.io/otel/sdk/metric"

	"github.com/looplj/objecthub/conf"
	"github.com/looplj/objecthub/internal/authz"
	"github.com/looplj/objecthub/internal/build"
	"github.com/looplj/objecthub/internal/fixtures"
	"github.com/looplj/objecthub/internal/log"
	"github.com/looplj/objecthub/internal/metrics"
	"github.com/looplj/objecthub/internal/objects"
	"github.com/looplj/objecthub/internal/server"
	"github.com/looplj/objecthub/internal/server/biz"
	"github.com/looplj/objecthub/internal/server/dependencies"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "config":
			handleConfigCommand()
			return
		case "seed":
			seed()
			return
		case "version", "--version", "-v":
			showVersion()
			return
		case "help", "--help", "-h":
			showHelp()
			return
		case "build-info":
			showBuildInfo()
			return
		}
	}

	startServer()
}

func showBuildInfo() {
	fmt.Println(build.GetBuildInfo())
}

type logger struct{}

func (l *logger) LogEvent(event fxevent.Event) {
	log.Debug(context.Background(), "fx event", log.Any("event", event))
}

func newMeterProvider(cfg metrics.Config, srv server.Config) (*sdk.MeterProvider, error) {
	return metrics.NewProvider(cfg, srv.Name)
}

func startServer() {
	server.Run(
		fx.WithLogger(func() fxevent.Logger {
			return &logger{}
		}),
		fx.Provide(conf.Load),
		fx.Provide(newMeterProvider),
		fx.Invoke(func(lc fx.Lifecycle, server *server.Server, provider *sdk.MeterProvider) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					if provider != nil {
						return metrics.SetupMetrics(provider, server.Config.Name)
					}

					return nil
				},
				OnStop: func(ctx context.Context) error {
					if provider != nil {
						return provider.Shutdown(ctx)
					}

					return nil
				},
			})
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					go func() {
						err := server.Run()
						if err != nil {
							log.Error(context.Background(), "server run error:", log.Cause(err))
							os.Exit(1)
						}
					}()

					return nil
				},
				OnStop: func(ctx context.Context) error {
					err := server.Shutdown(ctx)
					if err != nil {
						log.Error(context.Background(), "server shutdown error:", log.Cause(err))
					}

					return nil
				},
			})
		}),
	)
}

// seed loads a fixture file into the configured database without serving.
func seed() {
	file := ""

	for i := 2; i < len(os.Args); i++ {
		if (os.Args[i] == "--file" || os.Args[i] == "-f") && i+1 < len(os.Args) {
			file = os.Args[i+1]
		}
	}

	if file == "" {
		fmt.Println("Usage: objecthub seed --file <path>")
		os.Exit(1)
	}

	app := fx.New(
		fx.NopLogger,
		fx.Provide(conf.Load),
		dependencies.Module,
		biz.Module,
		fx.Invoke(func(cfg log.Config) {
			log.SetGlobalConfig(cfg)
		}),
		fx.Invoke(func(lc fx.Lifecycle, registry *objects.Registry, service *biz.ObjectService) {
			loader := fixtures.NewLoader(afero.NewOsFs(), registry, service)

			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					n, err := loader.Load(authz.NewSystemContext(ctx), file)
					if err != nil {
						return err
					}

					fmt.Printf("Seeded %d objects from %s\n", n, file)

					return nil
				},
			})
		}),
	)

	if err := app.Start(context.Background()); err != nil {
		fmt.Printf("Failed to seed: %v\n", err)
		os.Exit(1)
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Printf("Failed to stop: %v\n", err)
		os.Exit(1)
	}
}

func handleConfigCommand() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: objecthub config <preview|validate|get>")
		os.Exit(1)
	}

	switch os.Args[2] {
	case "preview":
		configPreview()
	case "validate":
		configValidate()
	case "get":
		configGet()
	default:
		fmt.Println("Usage: objecthub config <preview|validate|get>")
		os.Exit(1)
	}
}

func configPreview() {
	format := "yml"

	for i := 3; i < len(os.Args); i++ {
		if os.Args[i] == "--format" || os.Args[i] == "-f" {
			if i+1 < len(os.Args) {
				format = os.Args[i+1]
			}
		}
	}

	config, err := conf.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var output string

	switch format {
	case "json":
		b, err := prettyjson.Marshal(config)
		if err != nil {
			fmt.Printf("Failed to preview config: %v\n", err)
			os.Exit(1)
		}

		output = string(b)
	case "yml", "yaml":
		b, err := yaml.Marshal(config)
		if err != nil {
			fmt.Printf("Failed to preview config: %v\n", err)
			os.Exit(1)
		}

		output, err = highlight.Highlight(bytes.NewBuffer(b))
		if err != nil {
			fmt.Printf("Failed to preview config: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("Unsupported format: %s\n", format)
		os.Exit(1)
	}

	fmt.Println(output)
}

func configValidate() {
	config, err := conf.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := config.Validate(); err != nil {
		fmt.Println("Configuration validation failed:")
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println("Configuration is valid!")
}

func configGet() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: objecthub config get <key>")
		fmt.Println("")
		fmt.Println("Available keys:")
		fmt.Println("  server.port    Server port number")
		fmt.Println("  server.name    Server name")
		fmt.Println("  db.dialect     Database dialect")
		fmt.Println("  db.dsn         Database DSN")
		fmt.Println("  cache.mode     Object cache mode")
		os.Exit(1)
	}

	key := os.Args[3]

	config, err := conf.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var value any

	switch key {
	case "server.port":
		value = config.APIServer.Port
	case "server.name":
		value = config.APIServer.Name
	case "server.base_path":
		value = config.APIServer.BasePath
	case "server.debug":
		value = config.APIServer.Debug
	case "db.dialect":
		value = config.DB.Dialect
	case "db.dsn":
		value = config.DB.DSN
	case "cache.mode":
		value = config.Cache.Mode
	case "fixtures.file":
		value = config.Fixtures.File
	default:
		fmt.Fprintf(os.Stderr, "Unknown config key: %s\n", key)
		os.Exit(1)
	}

	fmt.Println(value)
}

func showHelp() {
	fmt.Println("ObjectHub content service")
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("  objecthub                      Start the server (default)")
	fmt.Println("  objecthub config preview       Preview configuration")
	fmt.Println("  objecthub config validate      Validate configuration")
	fmt.Println("  objecthub config get <key>     Get a specific config value")
	fmt.Println("  objecthub seed --file <path>   Load data objects from a fixture file")
	fmt.Println("  objecthub version              Show version")
	fmt.Println("  objecthub build-info           Show build information")
	fmt.Println("  objecthub help                 Show this help message")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -f, --format FORMAT       Output format for config preview (yml, json)")
}

func showVersion() {
	fmt.Println(build.Version)
}
