package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenTTL adalah masa berlaku token sesi.
const TokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken dikembalikan untuk token yang kosong, rusak,
// salah tanda tangan, atau sudah kedaluwarsa.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims adalah identitas yang tertanam dalam token.
type Claims struct {
	UserID int
}

// Manager menandatangani dan memverifikasi token sesi JWT (HS256).
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

// Sign membuat token untuk user yang diberikan.
func (m *Manager) Sign(userID int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     m.now().Add(m.ttl).Unix(),
	})
	return token.SignedString(m.secret)
}

// Verify memeriksa tanda tangan dan masa berlaku token,
// lalu mengembalikan claim identitas yang tertanam di dalamnya.
func (m *Manager) Verify(tokenString string) (Claims, error) {
	if tokenString == "" {
		return Claims{}, ErrInvalidToken
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < m.now().Unix() {
		return Claims{}, ErrInvalidToken
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	return Claims{UserID: int(userID)}, nil
}
