// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"contactbook/pkg/logger"
)

// RequestContextKey - ключ Locals с контекстом запроса.
const RequestContextKey = "requestContext"

// NewRequestIDMiddleware присваивает каждому запросу идентификатор
// и кладет контекст с ним в Locals для обработчиков.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		reqCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get("X-Request-Id"))
		ctx.Locals(RequestContextKey, reqCtx)
		return ctx.Next()
	}
}
