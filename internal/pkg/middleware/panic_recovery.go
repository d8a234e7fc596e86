package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/utils"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics,
// logs the stack trace and returns a 500 to the client.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					zapLogger.Error("Panic recovered",
						logger.Err(err),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("stack", string(debug.Stack())),
					)

					if !c.Response().Committed {
						_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
					}
				}
			}()

			return next(c)
		}
	}
}
