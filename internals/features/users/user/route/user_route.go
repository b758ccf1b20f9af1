package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"codetrain_backend/internals/constants"
	"codetrain_backend/internals/features/users/user/controller"
	authMiddleware "codetrain_backend/internals/middlewares/auth"
)

// UserUserRoutes: endpoints any signed-in user can reach.
func UserUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)
	r.Get("/users/me", ctrl.GetMe)
}

// UserAdminRoutes: admin-only account management.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)
	users := r.Group("/users",
		authMiddleware.OnlyRoles("Only admins may manage accounts", constants.RoleAdmin))
	users.Get("/", ctrl.GetAllUsers)
	users.Get("/:id", ctrl.GetUserByID)
	users.Patch("/:id", ctrl.UpdateUser)
	users.Patch("/:id/deactivate", ctrl.DeactivateUser)
}
