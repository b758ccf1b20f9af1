package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"codetrain_backend/internals/constants"
	authDTO "codetrain_backend/internals/features/users/auth/dto"
	blacklistModel "codetrain_backend/internals/features/users/auth/model"
	authService "codetrain_backend/internals/features/users/auth/service"
	userModel "codetrain_backend/internals/features/users/user/model"
	helper "codetrain_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var count int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_email = ?", email).Count(&count).Error; err != nil {
		log.Printf("[ERROR] Register email check: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] Hash password: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	user := userModel.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     constants.RoleStudent, // staff roles are assigned by an admin afterwards
		UserGen:      strings.TrimSpace(req.UserGen),
		UserIsActive: true,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		log.Printf("[ERROR] Create user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return helper.JsonCreated(c, "Account created", fiber.Map{
		"user_id":    user.UserID,
		"user_email": user.UserEmail,
	})
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var user userModel.UserModel
	if err := ctrl.DB.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Printf("[ERROR] Login lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := authService.GenerateAccessToken(&user)
	if err != nil {
		log.Printf("[ERROR] Sign token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	return helper.JsonOK(c, "Login successful", authDTO.LoginResponse{
		AccessToken: token,
		UserID:      user.UserID.String(),
		UserName:    user.UserName,
		UserRole:    user.UserRole.String(),
		UserGen:     user.UserGen,
	})
}

// POST /api/auth/logout  (requires auth middleware)
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing bearer token")
	}

	row := blacklistModel.TokenBlacklistModel{
		TokenBlacklistToken:     parts[1],
		TokenBlacklistExpiresAt: time.Now().Add(authService.AccessTokenLifetime),
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] Blacklist token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
	}
	return helper.JsonOK(c, "Logged out", nil)
}
