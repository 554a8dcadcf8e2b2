package user

import (
	"time"

	"gophnotes/internal/domain/user"
)

type registerInput struct {
	Body user.BaseRequest
}

type registerOutput struct {
	Body RegisterResponse
}

// RegisterResponse возвращает токен сразу: регистрация совмещена со входом.
type RegisterResponse struct {
	ID    string `json:"user_id"`
	Token string `json:"token"`
}

type loginInput struct {
	Body user.BaseRequest
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token string `json:"token"`
}

type logoutInput struct {
	Authorization string `header:"Authorization" doc:"Bearer токен текущей сессии"`
}

type logoutOutput struct {
	Body LogoutResponse
}

type LogoutResponse struct {
	Status string `json:"status"`
}

type meOutput struct {
	Body MeResponse
}

type MeResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
