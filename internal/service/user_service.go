package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Tomlord1122/task-backend/internal/domain"
	"github.com/Tomlord1122/task-backend/internal/repository"
)

type ContactRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

type UserService interface {
	// Contact registers the sender of a contact form and returns the user ID.
	// Repeated contacts from the same email map to the same user.
	Contact(ctx context.Context, req ContactRequest) (uint, error)
}

type userService struct {
	repo     repository.UserRepository
	validate *validator.Validate
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *userService) Contact(ctx context.Context, req ContactRequest) (uint, error) {
	if err := s.validate.Struct(req); err != nil {
		return 0, domain.ErrInvalidContact
	}

	user := &domain.User{Name: req.Name, Email: req.Email}
	if err := s.repo.FirstOrCreateByEmail(ctx, user); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to store contact")
		return 0, err
	}

	zerolog.Ctx(ctx).Info().Uint("user_id", user.ID).Msg("received contact")
	return user.ID, nil
}
