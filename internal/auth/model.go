package auth

import (
	"taskly-api/internal/user"
	"taskly-api/pkg/jwt_generator"
)

const (
	RefreshTokenCookieName = "refreshToken"
	PasswordHashCost       = 10
)

type RegisterPayload struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,maxbytes=72"`
	Role       string `json:"role" validate:"required,oneof=user student employee admin"`
	Name       string `json:"name"`
	Course     string `json:"course"`
	YearLevel  string `json:"yearLevel"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

func (payload *RegisterPayload) profilePayload() *user.ProfilePayload {
	return &user.ProfilePayload{
		Name:       payload.Name,
		Course:     payload.Course,
		YearLevel:  payload.YearLevel,
		Department: payload.Department,
		Position:   payload.Position,
	}
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordPayload struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordPayload struct {
	Email       string `json:"email" validate:"required,email"`
	Otp         string `json:"otp" validate:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"required,maxbytes=72"`
}

// Session is what a successful login produces. The refresh token never
// leaves the handler except as a cookie.
type Session struct {
	Tokens  *jwt_generator.Tokens
	User    *jwt_generator.Identity
	Profile *user.Profile
}

type LoginResponse struct {
	Token    string                  `json:"token"`
	User     *jwt_generator.Identity `json:"user"`
	Student  *user.Profile           `json:"student"`
	Employee *user.Profile           `json:"employee"`
	Admin    *user.Profile           `json:"admin"`
}

func NewLoginResponse(session *Session) *LoginResponse {
	response := &LoginResponse{
		Token: session.Tokens.AccessToken,
		User:  session.User,
	}

	switch session.User.Role {
	case user.RoleStudent:
		response.Student = session.Profile
	case user.RoleEmployee:
		response.Employee = session.Profile
	case user.RoleAdmin:
		response.Admin = session.Profile
	}

	return response
}

type TokenResponse struct {
	Token string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
