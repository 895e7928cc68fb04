package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/sigec-api/pkg/logger"
)

// AccessLog registra una línea por request con método, ruta, status, duración y request id.
// Los 5xx incluyen el error interno que dejó respondError.
func AccessLog(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// Deja que el ErrorHandler fije el status antes de loguear.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		evt := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			evt = log.Error()
		case status >= fiber.StatusBadRequest:
			evt = log.Warn()
		}
		if rid, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
			evt = evt.Str("request_id", rid)
		}
		if err, ok := c.Locals(localErr).(error); ok {
			evt = evt.Err(err)
		} else if chainErr != nil {
			evt = evt.Err(chainErr)
		}
		if legajo := GetLegajo(c); legajo > 0 {
			evt = evt.Int64("legajo", legajo)
		}
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")
		return nil
	}
}
