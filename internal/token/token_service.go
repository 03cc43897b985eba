package token

//go:generate mockgen -destination=../mocks/mock_token_generator.go -package=mocks github.com/slangstash/slang-service/internal/token Generator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator issues and verifies the two token kinds the service uses: session
// tokens carried in the auth cookie, and short-lived email tokens embedded in
// verification and password-reset links.
type Generator interface {
	GenerateSessionToken(username, userID, role string) (string, error)
	GenerateEmailToken(email string) (string, error)
	VerifySessionToken(tokenString string) (*SessionClaims, error)
	VerifyEmailToken(tokenString string) (*EmailClaims, error)
	SessionExpiry() time.Duration
}

type SessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	UserID   string `json:"id"`
	Role     string `json:"role"`
}

type EmailClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type TokenService struct {
	Secret        string
	SessionTTL    time.Duration
	EmailTokenTTL time.Duration
}

func NewTokenService(secret string, sessionHours, emailHours int) *TokenService {
	return &TokenService{
		Secret:        secret,
		SessionTTL:    time.Duration(sessionHours) * time.Hour,
		EmailTokenTTL: time.Duration(emailHours) * time.Hour,
	}
}

func (ts *TokenService) GenerateSessionToken(username, userID, role string) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		Username: username,
		UserID:   userID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

func (ts *TokenService) GenerateEmailToken(email string) (string, error) {
	now := time.Now()

	claims := EmailClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.EmailTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// VerifySessionToken parses and validates a session token string.
func (ts *TokenService) VerifySessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	if err := ts.verify(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// VerifyEmailToken parses and validates a verification/reset token string.
func (ts *TokenService) VerifyEmailToken(tokenString string) (*EmailClaims, error) {
	claims := &EmailClaims{}
	if err := ts.verify(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (ts *TokenService) verify(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})
	if err != nil {
		return err
	}

	if !token.Valid {
		return fmt.Errorf("invalid token")
	}

	return nil
}

func (ts *TokenService) SessionExpiry() time.Duration {
	return ts.SessionTTL
}
