package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "orderdesk/internal/log"
	"orderdesk/internal/services"
)

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// serviceError maps business errors onto HTTP statuses. Anything
// unrecognized is a server fault and surfaces as a generic 500.
func serviceError(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		return jsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInsufficientStock):
		return jsonError(c, fiber.StatusConflict, err.Error())
	default:
		applog.Error(c, action, err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "something went wrong, please try again")
	}
}
