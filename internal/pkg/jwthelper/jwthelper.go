package jwthelper

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/domain"
)

// TokenExpiry is the fixed validity window of a session token. There is no
// refresh mechanism - an expired token requires a fresh login.
const TokenExpiry = 24 * time.Hour

var (
	ErrMissingToken = errors.New("access token required")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims is the self-contained identity assertion embedded in every token.
type Claims struct {
	UserID uint        `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed HS256 token carrying the given identity.
func GenerateToken(signingKey []byte, userID uint, email string, role domain.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(signingKey)
}

// ParseToken validates signature and expiry and returns the decoded claims.
// Any failure is reported as ErrInvalidToken.
func ParseToken(signingKey []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}

		return signingKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
