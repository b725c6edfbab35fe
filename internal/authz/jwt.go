package authz

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/lo"
)

var (
	ErrInvalidJWT  = errors.New("invalid jwt token")
	ErrAuthDisable = errors.New("token auth is not configured")
)

// Claims are the JWT claims issued for a user.
type Claims struct {
	jwt.RegisteredClaims

	UserID int  `json:"user_id"`
	Admin  bool `json:"admin,omitempty"`
}

// Authenticator issues and verifies user tokens.
type Authenticator struct {
	config Config
	now    func() time.Time
}

func NewAuthenticator(config Config) *Authenticator {
	return &Authenticator{
		config: config,
		now:    time.Now,
	}
}

func (a *Authenticator) Enabled() bool {
	return a.config.Enabled()
}

// GenerateToken signs a token for the user.
func (a *Authenticator) GenerateToken(userID int, admin bool) (string, error) {
	if !a.Enabled() {
		return "", ErrAuthDisable
	}

	ttl := lo.Ternary(a.config.TokenTTL > 0, a.config.TokenTTL, 7*24*time.Hour)
	now := a.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.config.Issuer,
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Admin:  admin,
	})

	tokenString, err := token.SignedString([]byte(a.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// Authenticate verifies the token and returns the principal it carries.
func (a *Authenticator) Authenticate(tokenString string) (Principal, error) {
	if !a.Enabled() {
		return Principal{}, ErrAuthDisable
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
	}
	if a.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.config.Issuer))
	}

	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidJWT, token.Header["alg"])
		}

		return []byte(a.config.SecretKey), nil
	}, opts...)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrInvalidJWT, err)
	}

	if !token.Valid || claims.UserID <= 0 {
		return Principal{}, ErrInvalidJWT
	}

	return Principal{
		Type:   PrincipalTypeUser,
		UserID: lo.ToPtr(claims.UserID),
		Admin:  claims.Admin,
	}, nil
}
