package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	config "socialflow/configs"
	"socialflow/internal/models"
	"socialflow/internal/repository"
	"socialflow/internal/transfer"
	"socialflow/pkg/utils"
)

// ErrInvalidCredentials covers both unknown email and bad password, so the
// login response does not leak which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenDuration = 24 * time.Hour

// AuthService is demo-grade session glue: sha256 digests and an in-memory
// user store, enough to exercise the dashboard's login/register forms.
type AuthService interface {
	Register(ctx context.Context, reg *transfer.Registration) (*models.User, string, error)
	Login(ctx context.Context, creds *transfer.Credentials) (*models.User, string, error)
	UserInfo(ctx context.Context, userID string) (*models.User, error)
}

type authService struct {
	cfg config.Config
	ur  repository.UserRepository
}

func NewAuthService(cfg config.Config, ur repository.UserRepository) AuthService {
	return &authService{cfg: cfg, ur: ur}
}

func (s *authService) Register(ctx context.Context, reg *transfer.Registration) (*models.User, string, error) {
	if reg.Email == "" || reg.Password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	if _, err := s.ur.GetByEmail(ctx, reg.Email); err == nil {
		return nil, "", fmt.Errorf("%w: email is already registered", ErrValidation)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	user := models.User{
		Email:        reg.Email,
		Name:         reg.Name,
		PasswordHash: hashPassword(reg.Password),
	}
	if err := s.ur.Create(ctx, &user); err != nil {
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := utils.GenerateToken(s.cfg.SecretKey, user.ID, tokenDuration)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *authService) Login(ctx context.Context, creds *transfer.Credentials) (*models.User, string, error) {
	user, err := s.ur.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	digest := hashPassword(creds.Password)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(user.PasswordHash)) != 1 {
		slog.Info("failed login attempt", "email", creds.Email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.cfg.SecretKey, user.ID, tokenDuration)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) UserInfo(ctx context.Context, userID string) (*models.User, error) {
	return s.ur.GetByID(ctx, userID)
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
