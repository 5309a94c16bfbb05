package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && strings.TrimSpace(parts[1]) != "" {
			return strings.TrimSpace(parts[1]), nil
		}
		return "", errors.New("invalid Authorization header")
	}
	if ck := strings.TrimSpace(c.Cookies("access_token")); ck != "" {
		return ck, nil
	}
	return "", errors.New("missing Authorization header")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("exp claim missing")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("exp claim malformed")
	}
	exp := time.Unix(int64(expFloat), 0)
	if time.Now().After(exp.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return uuid.Nil, errors.New("sub claim missing")
	}
	return uuid.Parse(sub)
}

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if name, ok := claims["name"].(string); ok && name != "" {
		c.Locals("user_name", name)
	}
}

// AuthUserID reads the identity stored by AuthMiddleware. Handlers use this
// instead of re-parsing the token.
func AuthUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("auth_user_id").(string)
	if raw == "" {
		return uuid.Nil, errors.New("unauthenticated")
	}
	return uuid.Parse(raw)
}
