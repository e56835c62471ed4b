package serve

import (
	"github.com/bsthun/gut"
	"github.com/contentmine/cproject"
	"github.com/contentmine/cproject/command/cproject/app"
	"github.com/contentmine/cproject/common/config"
	"github.com/contentmine/cproject/compat/common"
	"github.com/contentmine/cproject/package/telemetry"
	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"go.uber.org/fx"
)

type Command struct {
	Config string `help:"Path of the server configuration file." default:".local/config.yml"`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app *app.App, command *Command) error {
	// * load dotenv
	_ = godotenv.Load()

	// * load config
	conf, err := config.New[Config](command.Config)
	if err != nil {
		return err
	}

	fx.New(
		fx.Supply(conf),
		fx.Provide(
			NewProject,
			NewFiber,
			NewMinio,
			NewTelemetry,
			NewHandler,
		),
		fx.Invoke(Bind),
	).Run()

	return nil
}

func NewProject(config *Config) *cproject.Project {
	project, err := cproject.New(*config.ProjectRoot, *config.ProjectName)
	if err != nil {
		gut.Fatal("unable to load project", err)
	}
	return project
}

func NewFiber(lc fx.Lifecycle, config *Config) *fiber.App {
	return common.Fiber(lc, config)
}

func NewMinio(config *Config) *minio.Client {
	return common.Minio(config)
}

// NewTelemetry constructs telemetry when an OTLP endpoint is configured, nil
// otherwise.
func NewTelemetry(config *Config) *telemetry.Telemetry {
	if config.TelemetryUrl == nil {
		return nil
	}

	t, err := telemetry.New(config)
	if err != nil {
		gut.Fatal("unable to initialize telemetry", err)
	}

	return t
}
