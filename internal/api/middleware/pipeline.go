package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Stage is one step of a request pipeline. It may enrich the context or stop
// the request by returning an error. Stages never write the response; errors
// are rendered by the central HTTP error handler.
type Stage func(ctx context.Context, r *http.Request) (context.Context, error)

// Chain composes stages left to right. The first error stops the chain.
func Chain(stages ...Stage) Stage {
	return func(ctx context.Context, r *http.Request) (context.Context, error) {
		for _, stage := range stages {
			var err error
			ctx, err = stage(ctx, r)
			if err != nil {
				return ctx, err
			}
		}
		return ctx, nil
	}
}

// Pipeline adapts an ordered list of stages to an Echo middleware.
func Pipeline(stages ...Stage) echo.MiddlewareFunc {
	run := Chain(stages...)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx, err := run(req.Context(), req)
			if err != nil {
				return err
			}
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
