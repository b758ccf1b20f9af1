package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"codetrain_backend/internals/constants"
)

// GetUserIDFromToken reads the user id the auth middleware stored in Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing user id in token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("invalid user id in token")
	}
	return id, nil
}

// GetUserRoleFromToken reads the parsed role from Locals.
func GetUserRoleFromToken(c *fiber.Ctx) (constants.Role, error) {
	raw, ok := c.Locals("userRole").(string)
	if !ok || raw == "" {
		return "", errors.New("missing role in token")
	}
	role, valid := constants.ParseRole(raw)
	if !valid {
		return "", errors.New("unknown role in token")
	}
	return role, nil
}

// GetUserGenFromToken reads the cohort label from Locals ("" when absent,
// e.g. staff accounts).
func GetUserGenFromToken(c *fiber.Ctx) string {
	gen, _ := c.Locals("gen").(string)
	return gen
}
