package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// JWTManager issues and verifies HS256 tokens with a secret shared by every
// service that must verify them. Verification is pure local computation, so
// any service holding the secret can authorize requests without calling back
// to the identity service. The flip side: no revocation before expiry.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	leeway time.Duration
	now    func() time.Time
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// NewJWTManager builds a manager around an explicit secret. A ttl of zero
// issues tokens without an expiry claim.
func NewJWTManager(secret []byte, ttl time.Duration) (*JWTManager, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt secret must not be empty")
	}

	return &JWTManager{
		secret: secret,
		ttl:    ttl,
		leeway: 30 * time.Second,
		now:    time.Now,
	}, nil
}

func (j *JWTManager) WithLeeway(d time.Duration) *JWTManager {
	if d >= 0 {
		j.leeway = d
	}
	return j
}

func (j *JWTManager) WithNowFunc(f func() time.Time) *JWTManager {
	if f != nil {
		j.now = f
	}
	return j
}

func (j *JWTManager) Issue(userID, username string) (string, error) {
	now := j.now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if j.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(j.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

func (j *JWTManager) Verify(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(j.leeway),
		jwt.WithTimeFunc(j.now),
	)

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
