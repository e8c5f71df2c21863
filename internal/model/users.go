package model

import "time"

type Role string

const (
	RoleWorker     Role = "WORKER"
	RoleOrderGiver Role = "ORDER_GIVER"
	RoleAdmin      Role = "ADMIN"
)

type User struct {
	ID        int64     `json:"id"`
	Login     string    `json:"login"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterDTO struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type LoginDTO struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type TokenInfo struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Role  Role   `json:"role"`
}
