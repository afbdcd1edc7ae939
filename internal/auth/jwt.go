package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by the session token. Issuance belongs to the account
// service; this package only needs the requester role out of the token.
type Claims struct {
	Sub  string `json:"sub"`  // user id
	Role string `json:"role"` // guest/parent/student/instructor/admin
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token. Used by tests and local tooling.
func GenerateToken(secret, userID, role string, ttl time.Duration) (string, error) {
	c := Claims{
		Sub:  userID,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(secret))
}

// ParseToken validates a token and returns its claims.
func ParseToken(secret, tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := t.Claims.(*Claims); ok && t.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
