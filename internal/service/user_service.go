package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"biblio/internal/db"
	apperrors "biblio/internal/errors"
	"biblio/internal/model"
	"biblio/internal/repository"
)

// UserService exposes patron operations.
type UserService interface {
	CreateUser(ctx context.Context, name, email, phone string) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo repository.UserRepository
	now  func() time.Time
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo, now: time.Now}
}

func (s *userService) CreateUser(ctx context.Context, name, email, phone string) (*model.User, error) {
	user := &model.User{
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: timestamp(s.now),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if db.IsDuplicateKey(err) {
			return nil, apperrors.NewConflict(err)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}
