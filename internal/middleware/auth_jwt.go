package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by the login token. UID is the account's ObjectID hex;
// IsAdmin/IsGV mirror the flags on the account document at login time.
type Claims struct {
	UID     string `json:"uid,omitempty"`
	IsAdmin bool   `json:"is_admin,omitempty"`
	IsGV    bool   `json:"is_gv,omitempty"`
	jwt.RegisteredClaims
}

// JWTAuth parses a Bearer token and stores the identity in Locals. Requests
// without an Authorization header pass through unauthenticated; protected
// routes use RequireAuth/RequireAdmin behind this.
func JWTAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims Claims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, fiber.NewError(fiber.StatusUnauthorized, "unsupported alg")
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		uid := claims.UID
		if uid == "" {
			uid = claims.Subject
		}
		if uid == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing uid")
		}

		c.Locals("user_id", uid)
		c.Locals("is_admin", claims.IsAdmin)
		c.Locals("is_gv", claims.IsGV)
		return c.Next()
	}
}

// RequireAuth rejects requests that did not present a valid token.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if uid, _ := c.Locals("user_id").(string); uid == "" {
			return fiber.ErrUnauthorized
		}
		return c.Next()
	}
}

// RequireAdmin rejects requests whose token lacks the admin flag.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if uid, _ := c.Locals("user_id").(string); uid == "" {
			return fiber.ErrUnauthorized
		}
		if isAdmin, _ := c.Locals("is_admin").(bool); !isAdmin {
			return fiber.NewError(fiber.StatusForbidden, "admin only")
		}
		return c.Next()
	}
}
