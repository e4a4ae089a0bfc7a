package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"diskusi-bisnis/models"
	"diskusi-bisnis/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

type authService struct {
	userRepo   repositories.UserRepository
	secret     []byte
	expiration time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, secret []byte, expiration time.Duration) AuthService {
	return &authService{userRepo: userRepo, secret: secret, expiration: expiration}
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Check if user already exists
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, models.NewConflictError("Email is already registered")
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:       email,
		Password:    string(hashedPassword),
		DisplayName: strings.TrimSpace(req.DisplayName),
		Role:        models.RoleMember,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.respond(user)
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.NewUnauthorizedError("Invalid credentials")
		}
		return nil, err
	}

	// Check password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if user.IsBanned {
		return nil, models.NewForbiddenError("This account has been banned")
	}

	return s.respond(user)
}

func (s *authService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *authService) respond(user *models.User) (*models.AuthResponse, error) {
	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     now.Add(s.expiration).Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
