package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"legal-assistant-be/internal/dto"
)

// ErrorHandlerMiddleware maps domain errors onto HTTP statuses so handlers
// can just return them.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var limitErr *dto.LimitExceededError
		if errors.As(err, &limitErr) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success":    false,
				"error":      "Günlük kullanım sınırına ulaştınız. Yarın tekrar deneyiniz.",
				"dailyUsage": limitErr.DailyUsage,
				"dailyLimit": limitErr.DailyLimit,
			})
		}

		var providerErr *dto.ProviderUnavailableError
		if errors.As(err, &providerErr) {
			return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(fiber.StatusBadGateway, "Yanıt üretilemedi, lütfen daha sonra tekrar deneyiniz"))
		}

		var notSavedErr *dto.AnswerNotSavedError
		if errors.As(err, &notSavedErr) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Yanıt kaydedilemedi"))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
