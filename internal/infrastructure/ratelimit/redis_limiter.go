// Package ratelimit limita intentos por IP con ventana fija. Con Redis el contador es compartido
// entre instancias; sin Redis se usa el limiter en memoria de fiber.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/sigec-api/internal/application/dto"
	"github.com/jhoicas/sigec-api/pkg/logger"
)

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// counter incrementa el contador de la ventana y devuelve el valor actual.
type counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisLimiter ventana fija sobre Redis (INCR + PEXPIRE atómico vía Lua).
type RedisLimiter struct {
	counter  counter
	limit    int
	window   time.Duration
	prefix   string
	failOpen bool
	log      *logger.Logger
}

// NewRedisLimiter construye el limiter. Con failOpen las fallas de Redis dejan pasar la request.
func NewRedisLimiter(rdb redis.Scripter, limit int, window time.Duration, prefix string, failOpen bool, log *logger.Logger) *RedisLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "rl"
	}
	return &RedisLimiter{
		counter:  scriptCounter{rdb: rdb},
		limit:    limit,
		window:   window,
		prefix:   prefix,
		failOpen: failOpen,
		log:      log.Component("ratelimit"),
	}
}

// Handler middleware fiber. Responde 429 con dto.ErrorResponse al superar el límite.
func (rl *RedisLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := rl.prefix + ":" + c.IP()
		count, err := rl.counter.Incr(c.UserContext(), key, rl.window)
		if err != nil {
			rl.log.Warn().Err(err).Str("key", key).Msg("rate limiter redis no disponible")
			if rl.failOpen {
				return c.Next()
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "RATE_LIMITER_UNAVAILABLE", Message: "servicio temporalmente no disponible",
			})
		}
		remaining := rl.limit - int(count)
		if remaining < 0 {
			remaining = 0
		}
		c.Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if count > int64(rl.limit) {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(rl.window.Seconds())))
			return tooManyRequests(c)
		}
		return c.Next()
	}
}

// NewMemoryHandler limiter en memoria del proceso (una sola instancia).
func NewMemoryHandler(limit int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          limit,
		Expiration:   window,
		LimitReached: tooManyRequests,
	})
}

func tooManyRequests(c *fiber.Ctx) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
		Code: "RATE_LIMITED", Message: "demasiados intentos, probá más tarde",
	})
}

type scriptCounter struct {
	rdb redis.Scripter
}

func (s scriptCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, s.rdb, []string{key}, window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("resultado inesperado del script: %T", res)
	}
}
