package dto

import (
	"time"

	"github.com/google/uuid"

	"codetrain_backend/internals/features/users/user/model"
)

// ================== REQUEST ==================
type UpdateUserRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=2,max=100"`
	UserRole *string `json:"user_role" validate:"omitempty,oneof=student teacher admin"`
	UserGen  *string `json:"user_gen" validate:"omitempty,max=30"`
}

// ================== RESPONSE ==================
type UserResponse struct {
	UserID          uuid.UUID `json:"user_id"`
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email"`
	UserRole        string    `json:"user_role"`
	UserGen         string    `json:"user_gen"`
	UserTotalPoints int       `json:"user_total_points"`
	UserIsActive    bool      `json:"user_is_active"`
	UserCreatedAt   string    `json:"user_created_at"`
}

// ================ CONVERSION =================
func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		UserID:          m.UserID,
		UserName:        m.UserName,
		UserEmail:       m.UserEmail,
		UserRole:        m.UserRole.String(),
		UserGen:         m.UserGen,
		UserTotalPoints: m.UserTotalPoints,
		UserIsActive:    m.UserIsActive,
		UserCreatedAt:   m.UserCreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponseList(models []model.UserModel) []UserResponse {
	result := make([]UserResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToUserResponse(&models[i]))
	}
	return result
}
