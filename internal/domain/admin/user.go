package admin

import (
	"context"
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
)

type Role string

const RoleAdmin Role = "admin"

type User struct {
	ID           common.UUID `json:"id"`
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	CreatedAt    time.Time   `json:"created_at"`
}

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id common.UUID) (*User, error)
}
