package dto

import "github.com/BruksfildServices01/booksmart-api/internal/models"

type SignUpRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=1"`
	LastName  *string `json:"lastName" binding:"omitempty,min=1"`
	Username  *string `json:"username" binding:"omitempty,min=1"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type UserResponse struct {
	ID              uint   `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Username        string `json:"username"`
	Role            string `json:"role"`
	BusinessID      *uint  `json:"businessId"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type UsernameAvailability struct {
	Available bool `json:"available"`
}

type StatsResponse struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalBusinesses   int64 `json:"totalBusinesses"`
	TotalAppointments int64 `json:"totalAppointments"`
}

type ImageResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

func FromUser(u *models.User) UserResponse {
	out := UserResponse{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Username:   u.Username,
		Role:       u.Role,
		BusinessID: u.BusinessID,
	}
	if u.ProfileImage != nil {
		out.ProfileImageURL = u.ProfileImage.URL
	}
	return out
}

func FromUsers(us []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for i := range us {
		out = append(out, FromUser(&us[i]))
	}
	return out
}
