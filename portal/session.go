package portal

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// SessionStore owns the bearer token and the resolved user for one
// process. It implements TokenSource, so the client it is wired to always
// reads the live token. All methods are safe for concurrent use.
type SessionStore struct {
	mu     sync.Mutex
	token  string
	user   *User
	client *Client
	store  TokenStore
	log    zerolog.Logger
}

func NewSessionStore(client *Client, store TokenStore, log zerolog.Logger) *SessionStore {
	return &SessionStore{client: client, store: store, log: log}
}

// New wires a client and a session store together: the store is the
// client's token source, the client is the store's gateway.
func New(baseURL string, store TokenStore, log zerolog.Logger) (*Client, *SessionStore) {
	session := &SessionStore{store: store, log: log}
	client := NewClient(baseURL, session, log)
	session.client = client
	return client, session
}

// Token implements TokenSource.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// CurrentUser returns the resolved user, nil when the session is
// anonymous or not yet resolved.
func (s *SessionStore) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Initialize loads any persisted token into memory. It makes no network
// call and is safe to run more than once.
func (s *SessionStore) Initialize() error {
	token, err := s.store.Load()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// ResolveCurrentUser asks the backend who the stored token belongs to.
// An anonymous session resolves to nil without any network call. A token
// the backend rejects, or a response with no user id, clears the session
// and also resolves to nil; resolution never fails outward.
func (s *SessionStore) ResolveCurrentUser(ctx context.Context) (*User, error) {
	if s.Token() == "" {
		return nil, nil
	}

	user, err := s.client.Me(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("session token rejected, clearing")
		s.clear()
		return nil, nil
	}
	if user.ID == "" {
		s.log.Debug().Msg("session resolved without a user id, clearing")
		s.clear()
		return nil, nil
	}
	if user.Role == "" {
		user.Role = RoleCustomer
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return &user, nil
}

// Login exchanges credentials for a token. Every failure surfaces as
// AuthError: bad credentials come back in the body rather than the status
// code and carry the server's message, while transport and API failures
// keep their cause behind Unwrap.
func (s *SessionStore) Login(ctx context.Context, email string, password string) (*User, error) {
	result, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, &AuthError{Message: "login failed", Err: err}
	}
	if result.Status == "failed" || result.Token == "" {
		message := result.Message
		if message == "" {
			message = "login failed"
		}
		return nil, &AuthError{Message: message}
	}

	s.mu.Lock()
	s.token = result.Token
	s.user = &result.User
	s.mu.Unlock()

	if err := s.store.Save(result.Token); err != nil {
		s.log.Warn().Err(err).Msg("could not persist session token")
	}
	return s.CurrentUser(), nil
}

// Signup registers a new account. The backend does not log the account
// in; a token is stored only if one ever appears in the response.
func (s *SessionStore) Signup(ctx context.Context, profile SignupProfile) error {
	result, err := s.client.Signup(ctx, profile)
	if err != nil {
		return &AuthError{Message: "signup failed", Err: err}
	}
	if result.Status == "failed" {
		message := result.Message
		if message == "" {
			message = "signup failed"
		}
		return &AuthError{Message: message}
	}

	if result.Token != "" {
		s.mu.Lock()
		s.token = result.Token
		s.mu.Unlock()
		if err := s.store.Save(result.Token); err != nil {
			s.log.Warn().Err(err).Msg("could not persist session token")
		}
	}
	return nil
}

// Logout ends the session. The server call is best effort; the local
// session is cleared no matter what, so Logout never returns an error.
func (s *SessionStore) Logout(ctx context.Context) {
	if s.Token() != "" {
		if err := s.client.Logout(ctx); err != nil {
			s.log.Warn().Err(err).Msg("server logout failed, clearing local session anyway")
		}
	}
	s.clear()
}

func (s *SessionStore) clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	if err := s.store.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("could not clear persisted token")
	}
}
