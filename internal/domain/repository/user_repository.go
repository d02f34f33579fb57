package repository

import (
	"context"

	"pediatric-gastro-api/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindAll returns users in insertion order.
	FindAll(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// Delete is idempotent: removing an absent id is not an error.
	Delete(ctx context.Context, id string) error
	// NextSequence returns the next value for sequential id assignment.
	NextSequence(ctx context.Context) (int, error)
}
