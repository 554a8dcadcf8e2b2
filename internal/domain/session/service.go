package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Create(ctx context.Context, userID string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

type Service struct {
	repo   Repository
	secret []byte
	ttl    time.Duration
	log    *slog.Logger
}

func NewService(repo Repository, secret string, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		secret: []byte(secret),
		ttl:    ttl,
		log:    log,
	}
}

// Create выпускает подписанный токен доступа и якорную запись сессии.
// Клейм sub содержит идентификатор пользователя, sid — идентификатор сессии,
// по которому выход из системы отзывает токен до истечения exp.
func (s *Service) Create(ctx context.Context, userID string) (string, error) {
	sessionID := uuid.NewString()
	expiresAt := time.Now().Add(s.ttl)

	claims := jwt.MapClaims{
		"sub": userID,
		"sid": sessionID,
		"exp": jwt.NewNumericDate(expiresAt),
		"iat": jwt.NewNumericDate(time.Now()),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	if err := s.repo.Create(ctx, sessionID, userID, expiresAt); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

// Validate возвращает идентификатор владельца токена.
func (s *Service) Validate(ctx context.Context, token string) (string, error) {
	userID, sessionID, err := s.parse(token)
	if err != nil {
		return "", err
	}

	// Подпись валидна, но сессия могла быть отозвана выходом из системы
	owner, err := s.repo.Find(ctx, sessionID)
	if err != nil {
		return "", ErrRevoked
	}
	if owner != userID {
		return "", ErrInvalidToken
	}

	return userID, nil
}

// Revoke удаляет якорную запись сессии, после чего токен перестает проходить Validate.
func (s *Service) Revoke(ctx context.Context, token string) error {
	_, sessionID, err := s.parse(token)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	return nil
}

func (s *Service) parse(token string) (userID, sessionID string, err error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidToken
	}

	userID, ok = claims["sub"].(string)
	if !ok || userID == "" {
		return "", "", ErrInvalidToken
	}

	sessionID, ok = claims["sid"].(string)
	if !ok || sessionID == "" {
		return "", "", ErrInvalidToken
	}

	return userID, sessionID, nil
}
