package response

import "webux_bd/internal/domain/entities"

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url,omitempty"`
	IsAdmin  bool   `json:"is_admin"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		PhotoURL: u.PhotoURL,
		IsAdmin:  u.IsAdmin,
	}
}

func FromAuth(u entities.User, token string) AuthResponse {
	return AuthResponse{Token: token, User: FromUser(u)}
}
