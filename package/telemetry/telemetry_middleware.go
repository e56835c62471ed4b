package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/attribute"
)

func (r *Telemetry) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// * ensure context
		if c.Context() == nil {
			c.SetContext(context.Background())
		}

		// * start span
		name := fmt.Sprintf("HTTP %s %s", c.Method(), c.OriginalURL())
		ctx, span := r.Tracer.Start(c.Context(), name)
		defer span.End()

		// * set context
		c.SetContext(ctx)

		// * set attributes
		span.SetAttributes(
			attribute.String("http.method", c.Method()),
			attribute.String("http.url", c.OriginalURL()),
			attribute.String("http.user_agent", c.Get("User-Agent")),
		)

		// * count metric
		started := time.Now()
		r.Instrument.HttpActiveRequestCounter(ctx, 1, c.OriginalURL())
		defer r.Instrument.HttpActiveRequestCounter(ctx, -1, c.OriginalURL())

		// * proceed to next
		err := c.Next()

		// * count metric
		r.Instrument.HttpDurationRecord(ctx, time.Since(started).Milliseconds(), c.OriginalURL(), c.Response().StatusCode())
		span.SetAttributes(attribute.Int("http.status_code", c.Response().StatusCode()))
		return err
	}
}
