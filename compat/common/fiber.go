package common

import (
	"context"

	"github.com/bsthun/gut"
	"github.com/contentmine/cproject/compat/response"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
)

type FiberConfig interface {
	GetWebListen() *string
}

func Fiber(lc fx.Lifecycle, config FiberConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:  response.FiberError,
		StrictRouting: true,
	})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				err := app.Listen(*config.GetWebListen())
				if err != nil {
					gut.Fatal("unable to listen", err)
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			_ = app.Shutdown()
			return nil
		},
	})

	return app
}
