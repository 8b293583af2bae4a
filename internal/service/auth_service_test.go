package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pankajneema/curiousdevs0.1/internal/config"
	"github.com/pankajneema/curiousdevs0.1/internal/models"
	"github.com/pankajneema/curiousdevs0.1/internal/repository"
	"github.com/pankajneema/curiousdevs0.1/internal/security"
)

type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (s *fakeUserStore) Create(ctx context.Context, user models.User) error {
	s.users[user.Email] = user
	return nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

type recordingRevoker struct {
	token string
	ttl   time.Duration
}

func (r *recordingRevoker) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	r.token = token
	r.ttl = ttl
	return nil
}

func (r *recordingRevoker) IsRevoked(ctx context.Context, token string) (bool, error) {
	return token == r.token && r.token != "", nil
}

func newTestAuthService(users UserStore, revoker security.TokenRevoker) *AuthService {
	cfg := &config.AppConfig{}
	cfg.Security.JWTSecret = "service-test-secret"
	cfg.Security.TokenTTL = time.Hour
	return NewAuthService(users, revoker, cfg, zerolog.Nop())
}

func TestSignup_AlwaysCustomer(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store, &recordingRevoker{})

	err := svc.Signup(context.Background(), SignupInput{Email: "New@B.Com", Password: "longenough"})
	if err != nil {
		t.Fatalf("Signup() error: %v", err)
	}

	user, ok := store.users["new@b.com"]
	if !ok {
		t.Fatal("email was not normalized to lower case")
	}
	if user.Role != models.UserRoleCustomer {
		t.Errorf("role = %q, expected customer", user.Role)
	}
	if len(user.PasswordHash) == 0 {
		t.Error("password was not hashed")
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store, &recordingRevoker{})

	input := SignupInput{Email: "a@b.com", Password: "longenough"}
	if err := svc.Signup(context.Background(), input); err != nil {
		t.Fatal(err)
	}

	if err := svc.Signup(context.Background(), input); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("error = %v, expected ErrEmailTaken", err)
	}
}

func TestLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store, &recordingRevoker{})

	if err := svc.Signup(context.Background(), SignupInput{Email: "a@b.com", Password: "correct-password"}); err != nil {
		t.Fatal(err)
	}

	user, token, err := svc.Login(context.Background(), "A@B.Com ", "correct-password")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if user.Email != "a@b.com" {
		t.Errorf("user email = %q", user.Email)
	}

	claims, err := security.ParseToken(token, "service-test-secret")
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != "customer" {
		t.Errorf("claims = %+v, expected user id %s and customer role", claims, user.ID)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store, &recordingRevoker{})

	if err := svc.Signup(context.Background(), SignupInput{Email: "a@b.com", Password: "correct-password"}); err != nil {
		t.Fatal(err)
	}

	if _, _, err := svc.Login(context.Background(), "a@b.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: error = %v, expected ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody@b.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: error = %v, expected ErrInvalidCredentials", err)
	}
}

func TestLogout_RevokesRemainingLifetime(t *testing.T) {
	revoker := &recordingRevoker{}
	svc := newTestAuthService(newFakeUserStore(), revoker)

	token, err := security.GenerateToken("service-test-secret", "u1", "customer", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("Logout() error: %v", err)
	}
	if revoker.token != token {
		t.Error("token was not revoked")
	}
	if revoker.ttl <= 0 || revoker.ttl > time.Hour {
		t.Errorf("revocation ttl = %v, expected the token's remaining life", revoker.ttl)
	}

	// A token that does not parse has nothing to revoke.
	fresh := &recordingRevoker{}
	svc = newTestAuthService(newFakeUserStore(), fresh)
	if err := svc.Logout(context.Background(), "garbage"); err != nil {
		t.Errorf("Logout(garbage) = %v, expected nil", err)
	}
	if fresh.token != "" {
		t.Error("garbage token must not reach the revoker")
	}
}
