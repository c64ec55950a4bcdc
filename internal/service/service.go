package service

import (
	"context"
	"time"

	"github.com/jrammler/userdesk/internal/entity"
)

type UserService interface {
	Create(ctx context.Context, payload entity.UserPayload) error
	Update(ctx context.Context, id int, payload entity.UserPayload) error
	Delete(ctx context.Context, id int) error
	GetOne(ctx context.Context, id int) (entity.User, error)
	GetAll(ctx context.Context) ([]entity.User, error)
}

type AuthService interface {
	LoginOperator(ctx context.Context, username, password string) (string, *time.Time, error)
	LogoutOperator(ctx context.Context, sessionToken string)
	GetSessionOperator(ctx context.Context, sessionToken string) (entity.Operator, error)
}

type Service struct {
	UserService UserService
	AuthService AuthService
}
