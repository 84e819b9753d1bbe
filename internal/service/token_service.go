package service

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/guttosm/mvr-resolver/config"
	"github.com/guttosm/mvr-resolver/internal/domain/dto"
)

// DefaultIssuer is the iss claim of issued tokens.
const DefaultIssuer = "mvr-resolver"

var (
	// ErrInvalidToken is returned for malformed, forged or expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrInvalidAPIKey is returned when exchanging an unknown API key.
	ErrInvalidAPIKey = errors.New("invalid api key")
)

// TokenService exchanges API keys for short-lived access tokens.
type TokenService interface {
	// IssueToken returns an access token for a configured API key.
	IssueToken(apiKey string) (*dto.TokenResponse, error)
	// ValidateToken validates an access token and returns its claims.
	ValidateToken(tokenString string) (*dto.Claims, error)
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
	Issuer         string
}

// NewTokenConfigFromAuthConfig creates TokenConfig from config.AuthConfig.
func NewTokenConfigFromAuthConfig(authConfig config.AuthConfig) TokenConfig {
	return TokenConfig{
		SecretKey:      authConfig.JWTSecretKey,
		AccessTokenTTL: authConfig.AccessTokenTTL,
		Issuer:         DefaultIssuer,
	}
}

var _ TokenService = (*TokenServiceImpl)(nil)

// TokenServiceImpl implements TokenService with HS256 signed JWTs.
type TokenServiceImpl struct {
	secretKey      []byte
	accessTokenTTL time.Duration
	issuer         string
	apiKeys        map[string]bool
	now            func() time.Time
}

// NewTokenService creates a token service accepting the given API keys.
func NewTokenService(cfg TokenConfig, apiKeys map[string]bool) *TokenServiceImpl {
	if cfg.AccessTokenTTL <= 0 {
		cfg.AccessTokenTTL = 15 * time.Minute
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultIssuer
	}
	return &TokenServiceImpl{
		secretKey:      []byte(cfg.SecretKey),
		accessTokenTTL: cfg.AccessTokenTTL,
		issuer:         cfg.Issuer,
		apiKeys:        apiKeys,
		now:            time.Now,
	}
}

// IssueToken returns a signed access token whose subject is the key fingerprint.
func (s *TokenServiceImpl) IssueToken(apiKey string) (*dto.TokenResponse, error) {
	if apiKey == "" || !s.apiKeys[apiKey] {
		return nil, ErrInvalidAPIKey
	}

	now := s.now()
	expiresAt := now.Add(s.accessTokenTTL)
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   KeyFingerprint(apiKey),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTokenTTL.Seconds()),
		ExpiresAt:   expiresAt.UTC(),
	}, nil
}

// ValidateToken validates signature, issuer and expiry.
func (s *TokenServiceImpl) ValidateToken(tokenString string) (*dto.Claims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &dto.Claims{
		Subject:   claims.Subject,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// KeyFingerprint identifies an API key in logs and tokens without revealing it.
func KeyFingerprint(apiKey string) string {
	sum := blake2b.Sum256([]byte(apiKey))
	return "key:" + hex.EncodeToString(sum[:6])
}
