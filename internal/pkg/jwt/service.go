package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is what this service signs into a token: the account identity and
// the token class. Access tokens carry the email for request context;
// refresh tokens carry only the user id.
type Claims struct {
	UserID    uuid.UUID `json:"uid"`
	Email     string    `json:"email,omitempty"`
	TokenType string    `json:"typ"`

	jwtlib.RegisteredClaims
}

// Service issues and validates the two token classes separately. A token
// of one class never validates as the other.
type Service interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (Claims, error)
	ValidateRefreshToken(token string) (Claims, error)
}

type tokenSpec struct {
	secret    []byte
	expiresIn time.Duration
	tokenType string
}

type HMACService struct {
	access  tokenSpec
	refresh tokenSpec

	now func() time.Time
}

func NewHMACService(accessSecret, refreshSecret string, accessExpiresIn, refreshExpiresIn time.Duration) *HMACService {
	return &HMACService{
		access:  tokenSpec{secret: []byte(accessSecret), expiresIn: accessExpiresIn, tokenType: tokenTypeAccess},
		refresh: tokenSpec{secret: []byte(refreshSecret), expiresIn: refreshExpiresIn, tokenType: tokenTypeRefresh},
		now:     time.Now,
	}
}

func (s *HMACService) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	return s.sign(s.access, userID, email)
}

func (s *HMACService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return s.sign(s.refresh, userID, "")
}

func (s *HMACService) ValidateAccessToken(token string) (Claims, error) {
	return s.parse(s.access, token)
}

func (s *HMACService) ValidateRefreshToken(token string) (Claims, error) {
	return s.parse(s.refresh, token)
}

func (s *HMACService) sign(spec tokenSpec, userID uuid.UUID, email string) (string, error) {
	if len(spec.secret) == 0 || spec.expiresIn <= 0 || userID == uuid.Nil {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c := Claims{
		UserID:    userID,
		Email:     email,
		TokenType: spec.tokenType,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(spec.expiresIn)),
		},
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(spec.secret)
}

func (s *HMACService) parse(spec tokenSpec, token string) (Claims, error) {
	parser := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(s.now),
	)

	var c Claims
	tok, err := parser.ParseWithClaims(token, &c, func(*jwtlib.Token) (any, error) {
		return spec.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid || c.TokenType != spec.tokenType || c.UserID == uuid.Nil {
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}
