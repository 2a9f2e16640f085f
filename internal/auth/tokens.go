package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/anshika-1705/movieapp/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the identity the rest of the application trusts once a token has
// been verified.
type Claims struct {
	UserID int
	Role   domain.Role
}

// TokenService issues and verifies HS256 access tokens. The token subject is
// the user id; the role travels as a custom claim so authorization checks do
// not need a database round trip.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *TokenService) Issue(userID int, role domain.Role) (string, error) {
	now := time.Now().UTC()

	claims := jwt.MapClaims{
		"sub":  strconv.Itoa(userID),
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.Atoi(subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	role, _ := mapClaims["role"].(string)
	if role == "" {
		role = string(domain.RoleUser)
	}

	return &Claims{
		UserID: userID,
		Role:   domain.Role(role),
	}, nil
}
