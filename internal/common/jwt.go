package common

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer = "tictactoe"

	sessionSubject = "user-auth"
	// socketSubject marks the short-lived credential accepted only by /ws.
	socketSubject = "ws-handshake"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrWrongTokenPurpose = errors.New("token not valid for this purpose")
)

// Claims is the session credential carried in the Authorization header.
type Claims struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SocketClaims is the identity bound into a websocket handshake token.
type SocketClaims struct {
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret     []byte
	sessionTTL time.Duration
	socketTTL  time.Duration
	now        func() time.Time
}

func NewTokenManager(secret string, sessionTTL, socketTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		socketTTL:  socketTTL,
		now:        time.Now,
	}
}

func (m *TokenManager) GenerateToken(userID uint64, username string) (string, error) {
	now := m.now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   sessionSubject,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *TokenManager) ValidToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if err := m.parse(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.Subject != sessionSubject {
		return nil, ErrWrongTokenPurpose
	}
	return claims, nil
}

// GenerateSocketToken issues the handshake credential for GET /ws. Every call
// yields a distinct token.
func (m *TokenManager) GenerateSocketToken(userID uint64, username, email string) (string, error) {
	now := m.now()
	claims := &SocketClaims{
		UserID:   userID,
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.socketTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   socketSubject,
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *TokenManager) VerifySocketToken(tokenString string) (*SocketClaims, error) {
	claims := &SocketClaims{}
	if err := m.parse(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.Subject != socketSubject {
		return nil, ErrWrongTokenPurpose
	}
	if claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (m *TokenManager) parse(tokenString string, claims jwt.Claims) error {
	if tokenString == "" {
		return ErrInvalidToken
	}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return err
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
