package middleware

import (
	"net/http"

	"shopping-list-manager/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// HeaderUserID carries the caller identity. The value is trusted as-is; this
// boundary deliberately performs no verification.
const HeaderUserID = "X-User-Id"

// userIDKey is the fiber locals key holding the authenticated identity.
const userIDKey = "userID"

// Identity extracts the caller identity from the request header and rejects
// requests without one.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get(HeaderUserID)
		if userID == "" {
			return c.Status(http.StatusUnauthorized).JSON(dto.ErrorEnvelope{
				Status: http.StatusUnauthorized,
				Error: dto.ErrorBody{
					Code:     dto.CodeUnauthorized,
					Message:  "authentication required",
					ParamMap: map[string]string{},
				},
			})
		}
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the identity stored by Identity, or empty when absent.
func UserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(userIDKey).(string)
	return userID
}
