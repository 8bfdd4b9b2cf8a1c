package application

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/api/middleware"
	"github.com/linskybing/clubhub/internal/config"
	"github.com/linskybing/clubhub/internal/domain/user"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/linskybing/clubhub/internal/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrEmailTaken          = errors.New("email already registered")
)

type UserService struct {
	Repos    *repository.Repos
	Sessions session.Publisher
}

func NewUserService(repos *repository.Repos, sessions session.Publisher) *UserService {
	return &UserService{
		Repos:    repos,
		Sessions: sessions,
	}
}

func (s *UserService) RegisterUser(input user.CreateUserInput) (user.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	_, err := s.Repos.User.GetUserByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}
	if err == nil {
		return user.User{}, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	usr := user.User{
		Email:    email,
		Name:     strings.TrimSpace(input.Name),
		Password: string(hashed),
	}
	if err := s.Repos.User.CreateUser(&usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.User{}, ErrEmailTaken
		}
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) LoginUser(ctx context.Context, email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr, config.TokenTTL)
	if err != nil {
		return user.User{}, "", err
	}

	s.publish(ctx, session.EventLogin, usr.ID)
	return usr, token, nil
}

func (s *UserService) Logout(ctx context.Context, id uuid.UUID) {
	s.publish(ctx, session.EventLogout, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, input user.UpdateUserInput) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	if input.Name != nil {
		usr.Name = strings.TrimSpace(*input.Name)
	}
	if input.AvatarURL != nil {
		if *input.AvatarURL == "" {
			usr.AvatarURL = nil
		} else {
			usr.AvatarURL = input.AvatarURL
		}
	}
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}

	s.publish(ctx, session.EventUpdated, id)
	return usr, nil
}

func (s *UserService) publish(ctx context.Context, kind session.EventKind, id uuid.UUID) {
	if s.Sessions != nil {
		s.Sessions.Publish(ctx, session.Event{Kind: kind, UserID: id})
	}
}
