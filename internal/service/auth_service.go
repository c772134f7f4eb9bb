package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ac_learner/internal/acconfig"
	"ac_learner/internal/models"
	"ac_learner/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = time.Hour

// Domain errors for auth flows.
var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidToken    = errors.New("invalid token")
	ErrNoSigningKey    = errors.New("auth: signing key not configured")
)

// AuthService registers operators and issues API tokens. A token carries
// the operator's config scope so handlers can refuse sends outside it.
type AuthService struct {
	repo    repository.Operators
	configs *acconfig.Catalog
	key     []byte
	ttl     time.Duration
}

// NewAuthService builds the service. configs may be nil, in which case
// sign-up accepts any config names.
func NewAuthService(repo repository.Operators, cfg AuthConfig, configs *acconfig.Catalog) *AuthService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{repo: repo, configs: configs, key: []byte(cfg.SigningKey), ttl: ttl}
}

// SignUp hashes password and creates a new operator limited to configs.
// An empty configs list grants every loaded config.
func (s *AuthService) SignUp(ctx context.Context, username, password string, configs []string) (int, error) {
	if strings.TrimSpace(username) == "" {
		return 0, errors.New("username is empty")
	}
	scope, err := s.scope(configs)
	if err != nil {
		return 0, err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}
	return s.repo.Create(ctx, models.User{Username: username, PasswordHash: hash, Configs: scope})
}

// scope drops duplicates and checks every name against the loaded catalog.
func (s *AuthService) scope(configs []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool, len(configs))
	for _, name := range configs {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.New("config scope contains an empty name")
		}
		if seen[name] {
			continue
		}
		if s.configs != nil {
			if _, ok := s.configs.Find(name); !ok {
				return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, name)
			}
		}
		seen[name] = true
		out = append(out, name)
	}
	return out, nil
}

// Claims are the API token claims. Configs is empty for an operator that
// may reach every config.
type Claims struct {
	jwt.RegisteredClaims
	UserID  int      `json:"user_id"`
	Configs []string `json:"configs,omitempty"`
}

// GenerateToken checks credentials and returns a signed JWT.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidPassword
	}

	return s.issueToken(*u)
}

// ParseToken validates accessToken and returns the operator it was issued
// to, with its config scope. PasswordHash is never set.
func (s *AuthService) ParseToken(accessToken string) (models.User, error) {
	if len(s.key) == 0 {
		return models.User{}, ErrNoSigningKey
	}
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil {
		return models.User{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return models.User{}, ErrInvalidToken
	}

	return models.User{ID: claims.UserID, Username: claims.Subject, Configs: claims.Configs}, nil
}

func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) issueToken(u models.User) (string, error) {
	if len(s.key) == 0 {
		return "", ErrNoSigningKey
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:  u.ID,
		Configs: u.Configs,
	})
	return token.SignedString(s.key)
}
