package account

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MalithGihan/taxnotice-service/internal/apperr"
	"github.com/MalithGihan/taxnotice-service/internal/store"
	"github.com/MalithGihan/taxnotice-service/pkg/types"
)

var (
	ErrMissingFields      = fmt.Errorf("%w: missing required fields", apperr.ErrInvalidInput)
	ErrInvalidEmail       = fmt.Errorf("%w: invalid email address", apperr.ErrInvalidInput)
	ErrInvalidDOB         = fmt.Errorf("%w: dob must be YYYY-MM-DD", apperr.ErrInvalidInput)
	ErrEmailTaken         = fmt.Errorf("%w: email address already in use", apperr.ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", apperr.ErrUnauthorized)
)

type Store interface {
	CreateUser(u types.User) error
	UserByEmail(email string) (types.User, error)
}

type RegisterRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	DOB          string `json:"dob"`
	MobileNumber string `json:"mobileNumber"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Service struct {
	store  Store
	hasher Hasher
	log    *slog.Logger
	now    func() time.Time
}

func NewService(st Store, h Hasher, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{store: st, hasher: h, log: log, now: time.Now}
}

func (s *Service) Register(req RegisterRequest) (types.PublicUser, error) {
	for _, v := range []string{req.FirstName, req.LastName, req.Email, req.Password, req.DOB, req.MobileNumber} {
		if strings.TrimSpace(v) == "" {
			return types.PublicUser{}, ErrMissingFields
		}
	}
	email := store.NormalizeEmail(req.Email)
	if !strings.Contains(email, "@") {
		return types.PublicUser{}, ErrInvalidEmail
	}
	dob := strings.TrimSpace(req.DOB)
	if _, err := time.Parse(time.DateOnly, dob); err != nil {
		return types.PublicUser{}, ErrInvalidDOB
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return types.PublicUser{}, fmt.Errorf("hash password: %w", err)
	}
	u := types.User{
		ID:           uuid.NewString(),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		PasswordHash: hash,
		DOB:          dob,
		MobileNumber: strings.TrimSpace(req.MobileNumber),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.store.CreateUser(u); err != nil {
		if errors.Is(err, store.ErrExists) {
			return types.PublicUser{}, ErrEmailTaken
		}
		return types.PublicUser{}, fmt.Errorf("create user: %w", err)
	}
	s.log.Info("user registered", "user_id", u.ID)
	return u.Public(), nil
}

// Login reports the same error for an unknown email and a wrong password.
func (s *Service) Login(req LoginRequest) (types.PublicUser, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return types.PublicUser{}, ErrMissingFields
	}
	u, err := s.store.UserByEmail(req.Email)
	if errors.Is(err, store.ErrNotFound) {
		return types.PublicUser{}, ErrInvalidCredentials
	}
	if err != nil {
		return types.PublicUser{}, fmt.Errorf("load user: %w", err)
	}

	ok, err := VerifyPassword(u.PasswordHash, req.Password)
	if err != nil {
		s.log.Error("stored password hash unreadable", "user_id", u.ID, "err", err)
		return types.PublicUser{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return types.PublicUser{}, ErrInvalidCredentials
	}
	return u.Public(), nil
}
