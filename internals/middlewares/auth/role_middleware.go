package auth

import (
	"github.com/gofiber/fiber/v2"

	"codetrain_backend/internals/constants"
)

// RoleMiddlewareWithCustomError validates the role from Locals against the
// allowed set. Roles are the closed constants.Role enum; anything that fails
// to parse is rejected outright.
func RoleMiddlewareWithCustomError(allowedRoles []constants.Role, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleStr, ok := c.Locals("userRole").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}
		role, valid := constants.ParseRole(roleStr)
		if !valid {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden: unknown role",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// OnlyRoles is the shorthand used when mounting routes.
func OnlyRoles(customMessage string, roles ...constants.Role) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}

// OnlyStaff allows teacher and admin.
func OnlyStaff(customMessage string) fiber.Handler {
	return OnlyRoles(customMessage, constants.RoleTeacher, constants.RoleAdmin)
}
