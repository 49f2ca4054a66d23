package auth

import (
	"errors"
	"time"

	"github.com/fekuna/gardentrack/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims is the persisted session record. It carries no expiry: a
// session ends only on logout.
type sessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenCodec signs session records so a record edited on disk is rejected
// when the session is restored.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret []byte) *TokenCodec {
	return &TokenCodec{secret: secret}
}

func (c *TokenCodec) Issue(id model.Identity) (string, error) {
	claims := sessionClaims{
		Name:  id.Name,
		Email: id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  id.Email,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

func (c *TokenCodec) Parse(raw string) (model.Identity, error) {
	token, err := jwt.ParseWithClaims(raw, &sessionClaims{}, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return model.Identity{}, err
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return model.Identity{}, jwt.ErrSignatureInvalid
	}
	if claims.Email == "" {
		return model.Identity{}, errors.New("session record has no email")
	}
	return model.Identity{Name: claims.Name, Email: claims.Email}, nil
}
