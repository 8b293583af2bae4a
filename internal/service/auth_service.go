package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pankajneema/curiousdevs0.1/internal/config"
	"github.com/pankajneema/curiousdevs0.1/internal/ids"
	"github.com/pankajneema/curiousdevs0.1/internal/models"
	"github.com/pankajneema/curiousdevs0.1/internal/repository"
	"github.com/pankajneema/curiousdevs0.1/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

type AuthService struct {
	users   UserStore
	revoker security.TokenRevoker
	cfg     *config.AppConfig
	log     zerolog.Logger
}

func NewAuthService(users UserStore, revoker security.TokenRevoker, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:   users,
		revoker: revoker,
		cfg:     cfg,
		log:     log,
	}
}

type SignupInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Location string
}

// Signup creates a customer account. The role is never taken from the
// request; admins are promoted out of band.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) error {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return err
	}

	user := models.User{
		ID:           ids.New(),
		Email:        input.Email,
		PasswordHash: passwordHash,
		FullName:     input.FullName,
		Phone:        input.Phone,
		Location:     input.Location,
		Role:         models.UserRoleCustomer,
	}

	return s.users.Create(ctx, user)
}

// Login verifies credentials and issues a bearer token carrying the user's
// id and role.
func (s *AuthService) Login(ctx context.Context, email string, password string) (models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := security.GenerateToken(
		s.cfg.Security.JWTSecret,
		user.ID,
		string(user.Role),
		s.cfg.Security.TokenTTL,
	)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

// Logout denylists the presented token for the remainder of its lifetime.
// A token that fails to parse has nothing left to revoke.
func (s *AuthService) Logout(ctx context.Context, tokenStr string) error {
	claims, err := security.ParseToken(tokenStr, s.cfg.Security.JWTSecret)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.revoker.Revoke(ctx, tokenStr, ttl); err != nil {
		s.log.Error().Err(err).Msg("token revoke failed")
		return err
	}
	return nil
}
