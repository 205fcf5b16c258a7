package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/UDAVALAPATISURESH/backend-spn/db"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
	"github.com/UDAVALAPATISURESH/backend-spn/notify"
	"github.com/UDAVALAPATISURESH/backend-spn/payments"
	"github.com/UDAVALAPATISURESH/backend-spn/scheduler"
	"github.com/UDAVALAPATISURESH/backend-spn/utils"
)

var (
	engine   *scheduler.Engine
	registry *payments.Registry
	notifier notify.Notifier
)

// Init wires the booking engine, payment providers and notifier into the
// package. Must be called once at startup before routes are served.
func Init(e *scheduler.Engine, r *payments.Registry, n notify.Notifier) {
	engine = e
	registry = r
	notifier = n
}

// dispatch fans lifecycle events out without blocking the response.
func dispatch(events []scheduler.Event) {
	if notifier == nil || len(events) == 0 {
		return
	}
	go notify.Dispatch(notifier, events)
}

// actorFromCtx builds the acting identity from the JWT locals. For staff
// users the staff profile is resolved by email so per-assignment checks can
// compare staff IDs.
func actorFromCtx(c *fiber.Ctx) scheduler.Actor {
	actor := scheduler.Actor{}
	if id, ok := c.Locals("userID").(uint); ok {
		actor.UserID = id
	}
	if role, ok := c.Locals("role").(string); ok {
		actor.Role = role
	}
	if actor.Role == models.RoleStaff {
		if email, ok := c.Locals("email").(string); ok {
			var staff models.Staff
			if err := db.DB.Where("email = ?", email).First(&staff).Error; err == nil {
				actor.StaffID = staff.ID
			}
		}
	}
	return actor
}

// respondEngineError maps engine error types onto HTTP statuses: validation,
// policy and conflict failures are 400, missing records 404, authorization
// failures 403, gateway failures 500.
func respondEngineError(c *fiber.Ctx, err error) error {
	var (
		validationErr *scheduler.ValidationError
		notFoundErr   *scheduler.NotFoundError
		forbiddenErr  *scheduler.ForbiddenError
		policyErr     *scheduler.PolicyError
		conflictErr   *scheduler.ConflictError
		providerErr   *payments.ProviderError
	)
	switch {
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: err.Error()})
	case errors.As(err, &forbiddenErr):
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{Message: err.Error()})
	case errors.As(err, &validationErr), errors.As(err, &policyErr), errors.As(err, &conflictErr):
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: err.Error()})
	case errors.As(err, &providerErr):
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Payment provider error",
			Error:   err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Something went wrong",
			Error:   err.Error(),
		})
	}
}
