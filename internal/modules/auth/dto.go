package auth

import "moviweb/internal/domain"

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Gender   string `json:"gender,omitempty"`
	AdminID  *int64 `json:"admin_id,omitempty"`
}

type RegisterAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Gender   *string `json:"gender,omitempty"`
	Password *string `json:"password,omitempty"`
}

type ProfileResponse struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Role           domain.Role `json:"role"`
	Gender         string      `json:"gender,omitempty"`
	ProfilePicture string      `json:"profile_picture,omitempty"`
}

func userProfile(u *domain.User) ProfileResponse {
	return ProfileResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           domain.RoleUser,
		Gender:         u.Gender,
		ProfilePicture: u.ProfilePicture,
	}
}

func adminProfile(a *domain.Admin) ProfileResponse {
	return ProfileResponse{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Role:  domain.RoleAdmin,
	}
}
