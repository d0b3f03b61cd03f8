package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sravanipallapu19/healthComp/internal/auth"
	"github.com/sravanipallapu19/healthComp/internal/model"
	"github.com/sravanipallapu19/healthComp/internal/store"
	"github.com/sravanipallapu19/healthComp/internal/validate"
)

// RegisterRequest is the input of UserService.Register.
type RegisterRequest struct {
	Email       string
	Password    string
	DisplayName *string
	TimeZone    string
}

// UserService handles sign-up and sign-in.
type UserService struct {
	store  store.Store
	issuer *auth.Issuer
	cost   int
}

func NewUserService(s store.Store, issuer *auth.Issuer) *UserService {
	return &UserService{store: s, issuer: issuer, cost: bcrypt.DefaultCost}
}

func normalizeEmail(v string) string { return strings.ToLower(strings.TrimSpace(v)) }

// Register validates req, hashes the password and creates the user.
// A taken email yields model.ErrConflict.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	email := normalizeEmail(req.Email)
	if err := validate.RegisterUser(email, req.Password, req.DisplayName, req.TimeZone); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.store.Users().Create(ctx, &model.User{
		Email:        email,
		DisplayName:  req.DisplayName,
		TimeZone:     req.TimeZone,
		PasswordHash: string(hash),
	})
}

// Login checks the credentials and returns a signed token. Unknown emails and
// wrong passwords both yield model.ErrUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	u, err := s.store.Users().GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", nil, fmt.Errorf("invalid credentials: %w", model.ErrUnauthorized)
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials: %w", model.ErrUnauthorized)
	}
	token, err := s.issuer.Issue(u.UserID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, u, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.store.Users().Get(ctx, userID)
}
