package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/Oisamaye1/myportfolio/internal/config"
	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/internal/utils"
	"github.com/Oisamaye1/myportfolio/models"
)

// authService is the concrete implementation of AuthService. The CMS has a
// single operator account held in configuration, so authentication is a
// comparison against those values rather than a user store lookup.
type authService struct {
	// adminUsername and adminPassword are the only accepted credential pair.
	adminUsername string
	adminPassword string

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService populated with the operator
// credentials and token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		adminUsername: cfg.AdminUsername,
		adminPassword: cfg.AdminPassword,
		tokenSignKey:  cfg.TokenSignKey,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Authenticate checks the submitted credential pair against the configured
// operator account.
//
// Returns the operator identity or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrInvalidCredentials if either value does not match.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Msg("empty username or password provided")
		return models.Identity{}, ErrInvalidDataProvided
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(a.adminUsername)) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(a.adminPassword)) == 1
	if !usernameMatch || !passwordMatch {
		log.Warn().Str("username", username).Msg("failed login attempt")
		return models.Identity{}, ErrInvalidCredentials
	}

	return models.Identity{Username: a.adminUsername, Role: models.RoleAdmin}, nil
}

// IssueToken creates a signed session token carrying the given identity.
//
// The token is signed with the configured tokenSignKey and expires after
// tokenDuration.
func (a *authService) IssueToken(ctx context.Context, identity models.Identity) (models.Token, error) {
	token, err := utils.GenerateJWTToken(identity, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// VerifyToken validates and parses a raw session token string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and expiry. Any validation failure (expired, malformed, wrong key) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers can treat the
// session as simply absent.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.Identity, error) {
	identity, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey)
	if err != nil {
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	return identity, nil
}
