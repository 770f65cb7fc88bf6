package jwtutil

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var ErrWrongTokenType = errors.New("wrong token type")

type Claims struct {
	UserID   uint     `json:"uid"`
	Username string   `json:"uname"`
	Roles    []string `json:"roles"`
	Type     string   `json:"typ"`
	jwt.RegisteredClaims
}

type Signer struct {
	Secret        []byte
	Issuer        string
	ExpMin        int
	RefreshExpMin int
	// now is overridden in tests
	now func() time.Time
}

func (s *Signer) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// SignAccess issues a short lived token carrying the user's roles.
func (s *Signer) SignAccess(userID uint, username string, roles []string) (string, error) {
	return s.sign(userID, username, roles, TypeAccess, time.Duration(s.ExpMin)*time.Minute)
}

// SignRefresh issues a long lived token that can only be exchanged for a new
// access token.
func (s *Signer) SignRefresh(userID uint, username string, roles []string) (string, error) {
	return s.sign(userID, username, roles, TypeRefresh, time.Duration(s.RefreshExpMin)*time.Minute)
}

func (s *Signer) sign(userID uint, username string, roles []string, typ string, ttl time.Duration) (string, error) {
	now := s.clock()
	claims := Claims{
		UserID: userID, Username: username, Roles: roles, Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			Issuer:    s.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// Parse verifies signature, expiry and issuer and returns the claims.
func (s *Signer) Parse(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock),
	}
	if s.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.Issuer))
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) { return s.Secret, nil }, opts...)
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}

// ParseType is Parse plus a check of the token type claim.
func (s *Signer) ParseType(tokenStr, typ string) (*Claims, error) {
	claims, err := s.Parse(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.Type != typ {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

// TTL is how long the token stays valid from now; zero once expired.
func (s *Signer) TTL(c *Claims) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	d := c.ExpiresAt.Time.Sub(s.clock())
	if d < 0 {
		return 0
	}
	return d
}
