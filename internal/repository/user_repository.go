package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Tomlord1122/task-backend/internal/domain"
)

type UserRepository interface {
	// FirstOrCreateByEmail returns the user registered under user.Email,
	// creating it from user when no such row exists.
	FirstOrCreateByEmail(ctx context.Context, user *domain.User) error
}

type gormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) FirstOrCreateByEmail(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).
		Where(domain.User{Email: user.Email}).
		Attrs(domain.User{Name: user.Name}).
		FirstOrCreate(user).Error
}

