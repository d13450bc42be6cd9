package cryptography

import (
	"errors"
	"fmt"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims are the claims carried by bearer tokens
type tokenClaims struct {
	UniqueName string   `json:"unique_name"`
	Email      string   `json:"email"`
	Roles      []string `json:"role"`
	jwt.RegisteredClaims
}

// jwtTokenIssuer signs and validates HS256 tokens with a symmetric key.
// Issuer and audience are neither set nor validated.
type jwtTokenIssuer struct {
	secretKey []byte
	logger    logger.Logger
}

// NewJwtTokenIssuer creates a TokenIssuer from the configured signing key
func NewJwtTokenIssuer(settings *config.JwtTokenSettings, logger logger.Logger) (users.TokenIssuer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &jwtTokenIssuer{
		secretKey: []byte(settings.SecretKey),
		logger:    logger,
	}, nil
}

// Issue signs a token for principal
func (i *jwtTokenIssuer) Issue(principal *users.Principal, issuedAt time.Time) (string, error) {
	if principal == nil || principal.UserID == "" || principal.TokenID == "" {
		return "", fmt.Errorf("principal requires user and token IDs: %w", domain.ErrInvalidInput)
	}
	if !principal.ExpiresAt.After(issuedAt) {
		return "", fmt.Errorf("token expiry must be after issue time: %w", domain.ErrInvalidInput)
	}

	roles := principal.Roles
	if roles == nil {
		roles = []string{}
	}

	claims := &tokenClaims{
		UniqueName: principal.UserName,
		Email:      principal.Email,
		Roles:      roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.UserID,
			ID:        principal.TokenID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(principal.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse validates signature, expiry and not-before of rawToken
func (i *jwtTokenIssuer) Parse(rawToken string) (*users.Principal, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(*jwt.Token) (interface{}, error) {
		return i.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("token expired: %w", domain.ErrUnauthorized)
		}
		i.logger.Debug("Rejected bearer token: ", err)
		return nil, fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}

	principal := &users.Principal{
		UserID:   claims.Subject,
		UserName: claims.UniqueName,
		Email:    claims.Email,
		Roles:    claims.Roles,
		TokenID:  claims.ID,
	}
	if claims.ExpiresAt != nil {
		principal.ExpiresAt = claims.ExpiresAt.Time
	}
	if principal.Roles == nil {
		principal.Roles = []string{}
	}
	return principal, nil
}
