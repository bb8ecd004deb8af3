package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vacuum-planner/service/i"
	"github.com/dgrijalva/jwt-go"
)

var _ i.Tokenizer = &JwtService{}

// Claim names set on every token.
const (
	ClaimSubject  = "sub"
	ClaimIssuer   = "iss"
	ClaimIssuedAt = "iat"
	ClaimExpires  = "exp"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrWrongIssuer   = errors.New("token issued by someone else")
	ErrEmptySubject  = errors.New("token subject is required")
	ErrSigningMethod = errors.New("unexpected signing method")
)

// JwtService issues and validates HS256 bearer tokens for API clients.
type JwtService struct {
	secretKey string
	issuer    string
}

// NewJwtService creates a new JWT Service with the provided configuration.
func NewJwtService(secretKey, issuer string) *JwtService {
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

// Issue implements i.Tokenizer.
func (s *JwtService) Issue(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		ClaimSubject:  subject,
		ClaimIssuer:   s.issuer,
		ClaimIssuedAt: now.Unix(),
		ClaimExpires:  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// Decode implements i.Tokenizer. Besides signature and expiry it rejects
// tokens minted by another issuer.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.getSigningKey)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, ErrWrongIssuer
	}
	return claims, nil
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrSigningMethod
	}
	return []byte(s.secretKey), nil
}
