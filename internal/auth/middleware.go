package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-portal/internal/domain"
	"github.com/spec-kit/employee-portal/internal/repository"
	apperrors "github.com/spec-kit/employee-portal/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	Profile        *domain.Profile
	TokenID        string
	TokenExpiresAt time.Time
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens   *TokenManager
	profiles repository.ProfileRepository
	revoked  RevocationList
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, profiles repository.ProfileRepository, revoked RevocationList) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, profiles: profiles, revoked: revoked}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	if m.revoked != nil {
		revoked, err := m.revoked.IsRevoked(c.Context(), claims.ID)
		if err != nil {
			return apperrors.NewStoreError(err)
		}
		if revoked {
			return apperrors.NewUnauthorized("token revoked")
		}
	}

	profile, err := m.profiles.GetByID(c.Context(), claims.Subject)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthorized("user not found")
		}
		return apperrors.NewStoreError(err)
	}

	principal := &Principal{Profile: profile, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		principal.TokenExpiresAt = claims.ExpiresAt.Time
	}
	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
