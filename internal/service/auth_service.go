package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-inventory-rfid/internal/model"
	"go-inventory-rfid/internal/repository"
	"go-inventory-rfid/pkg/jwt"
	"go-inventory-rfid/pkg/validator"

	"github.com/sirupsen/logrus"
)

type RegisterInput struct {
	Username string `json:"Username" validate:"required,notblank,max=255"`
	Password string `json:"Password" validate:"required,min=6,max=72"`
	Fullname string `json:"Fullname" validate:"max=255"`
	Email    string `json:"Email" validate:"omitempty,email,max=255"`
	Role     string `json:"Role" validate:"omitempty,oneof=admin user guest"`
}

type LoginInput struct {
	Username string `json:"Username" validate:"required"`
	Password string `json:"Password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type AuthService interface {
	Register(ctx context.Context, in *RegisterInput, caller *Actor) (*model.User, error)
	Login(ctx context.Context, in *LoginInput) (*LoginResponse, error)
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *jwt.Manager
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.Manager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates an account. Only an authenticated admin may create another admin.
func (s *authService) Register(ctx context.Context, in *RegisterInput, caller *Actor) (*model.User, error) {
	if err := validator.Validate(in); err != nil {
		return nil, err
	}

	role := model.RoleUser
	if in.Role != "" {
		role = model.Role(in.Role)
	}
	if role == model.RoleAdmin && (caller == nil || caller.Role != string(model.RoleAdmin)) {
		return nil, ErrForbiddenRole
	}

	if _, err := s.userRepo.FindByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user := &model.User{
		Username: in.Username,
		Fullname: in.Fullname,
		Email:    in.Email,
		Role:     role,
	}
	if err := user.SetPassword(in.Password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.UserID,
		"username": user.Username,
		"role":     user.Role,
	}).Info("User registered")

	return user, nil
}

// Login verifies the credentials and issues a bearer token.
// Unknown users and wrong passwords fail with the same error.
func (s *authService) Login(ctx context.Context, in *LoginInput) (*LoginResponse, error) {
	if err := validator.Validate(in); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.CheckPassword(in.Password) {
		logrus.WithField("username", in.Username).Warn("Login failed: wrong password")
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Generate(user.UserID, user.Username, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// EnsureAdmin creates the admin account when it does not exist yet.
func (s *authService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return false, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}

	user := &model.User{Username: username, Fullname: "Administrator", Role: model.RoleAdmin}
	if err := user.SetPassword(password); err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return false, err
	}
	return true, nil
}
