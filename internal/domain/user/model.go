package user

import "time"

type User struct {
	ID        string
	Email     string
	Password  string // хэш
	CreatedAt time.Time
}

type BaseRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}
