package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"codetrain_backend/internals/configs"
	userModel "codetrain_backend/internals/features/users/user/model"
)

const AccessTokenLifetime = 24 * time.Hour

// GenerateAccessToken signs the claims the auth middleware expects.
func GenerateAccessToken(u *userModel.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   u.UserID.String(),
		"user_name": u.UserName,
		"role":      u.UserRole.String(),
		"gen":       u.UserGen,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(AccessTokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
