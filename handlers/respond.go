package handlers

import (
	"log"

	"club-checkin-system/services"

	"github.com/gofiber/fiber/v2"
)

func statusForKind(kind services.ErrorKind) int {
	switch kind {
	case services.KindValidation:
		return fiber.StatusBadRequest
	case services.KindUnauthorized:
		return fiber.StatusUnauthorized
	case services.KindForbidden:
		return fiber.StatusForbidden
	case services.KindNotFound:
		return fiber.StatusNotFound
	case services.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError converts a service failure into the wire error shape:
// the localized display text under "error", the stable kind under "code".
func respondError(c *fiber.Ctx, err error) error {
	se := services.AsServiceError(err)
	if se.Kind == services.KindInternal {
		log.Printf("internal error on %s: %v", c.Path(), err)
	}
	return c.Status(statusForKind(se.Kind)).JSON(fiber.Map{
		"error": se.Message,
		"code":  se.Code,
	})
}
