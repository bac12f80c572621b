package dto

import "github.com/deniz/campuscare/internal/app/models"

// ProfileResponse is the account view including the role detail variant
type ProfileResponse struct {
	ID         int64                    `json:"id"`
	Username   string                   `json:"username"`
	Email      string                   `json:"email"`
	Role       models.RoleType          `json:"role"`
	Admin      *models.AdminDetail      `json:"admin,omitempty"`
	Student    *models.StudentDetail    `json:"student,omitempty"`
	Counsellor *models.CounsellorDetail `json:"counsellor,omitempty"`
}

// ChangeEmailRequest updates the account email
type ChangeEmailRequest struct {
	NewEmail string `json:"newEmail" binding:"required,email"`
}

// ResetPasswordRequest replaces the account password
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// NewProfileResponse maps a user model to its profile view
func NewProfileResponse(user *models.User) *ProfileResponse {
	return &ProfileResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		Admin:      user.Admin,
		Student:    user.Student,
		Counsellor: user.Counsellor,
	}
}
