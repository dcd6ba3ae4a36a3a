package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
)

// AuthService resolves login attempts against the user roster.
//
// The roster lookup is case-insensitive. The ADMIN account additionally
// requires an exact, case-sensitive username match and a password check
// against the stored bcrypt hash; every failure surfaces as
// ErrInvalidCredentials so the caller cannot tell which part was wrong.
// Non-privileged roles authenticate on username alone.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Actor, error) {
	if username == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if user.Role == domain.RoleAdmin {
		if user.Username != username ||
			bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			s.log.Warn().Str("username", username).Msg("admin login rejected")
			return "", nil, domain.ErrInvalidCredentials
		}
	}

	actor := user.Actor()
	token, err := s.generateToken(actor)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", actor.Username).Str("role", string(actor.Role)).Msg("login accepted")

	return token, &actor, nil
}

func (s *AuthService) generateToken(actor domain.Actor) (string, error) {
	claims := jwt.MapClaims{
		"username": actor.Username,
		"role":     string(actor.Role),
		"village":  string(actor.AssignedVillage),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
