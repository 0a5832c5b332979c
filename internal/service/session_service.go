package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"golang.org/x/crypto/bcrypt"

	"shopfront/internal/domain"
	"shopfront/internal/store"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrDuplicateEmail is returned when registering an email that already has an account.
	ErrDuplicateEmail = errors.New("user with this email already exists")
)

// SessionService manages the registered user list and the single
// current-user pointer. A failed login or registration never touches the
// existing session.
type SessionService interface {
	Register(ctx context.Context, email, password, name string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.User, error)
}

type sessionService struct {
	store  *store.Adapter
	logger *logrus.Logger
}

func NewSessionService(adapter *store.Adapter, logger *logrus.Logger) SessionService {
	if logger == nil {
		logger = logrus.New()
	}
	return &sessionService{
		store:  adapter,
		logger: logger,
	}
}

func (s *sessionService) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)

	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("a valid email is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}
	if name == "" {
		return nil, errors.New("name is required")
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return nil, ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}

	users = append(users, user)
	if err := s.store.Set(ctx, store.KeyUsers, users); err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, store.KeyCurrentUser, user); err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).Info("user registered")
	return sanitizeUser(&user), nil
}

func (s *sessionService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if !strings.EqualFold(users[i].Email, email) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		if err := s.store.Set(ctx, store.KeyCurrentUser, users[i]); err != nil {
			return nil, err
		}
		return sanitizeUser(&users[i]), nil
	}

	return nil, ErrInvalidCredentials
}

func (s *sessionService) Logout(ctx context.Context) error {
	return s.store.Remove(ctx, store.KeyCurrentUser)
}

// CurrentUser returns the persisted session pointer, or nil when nobody
// is logged in.
func (s *sessionService) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	found, err := s.store.Get(ctx, store.KeyCurrentUser, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return sanitizeUser(&user), nil
}

func (s *sessionService) loadUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if _, err := s.store.Get(ctx, store.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}
