package context

import "github.com/labstack/echo/v4"

const (
	// KeyUserID holds the authenticated user ID set by the auth middleware.
	KeyUserID ContextKey = "user_id"

	// KeyToken holds the raw bearer token of the request.
	KeyToken ContextKey = "token"
)

// SetIdentity records the authenticated caller on the echo context.
func SetIdentity(c echo.Context, userID int64, token string) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyToken), token)
}

// GetUserID returns the authenticated user ID, if the auth middleware ran.
func GetUserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(string(KeyUserID)).(int64)

	return id, ok && id > 0
}

// GetToken returns the raw bearer token of an authenticated request, or "".
func GetToken(c echo.Context) string {
	token, _ := c.Get(string(KeyToken)).(string)

	return token
}
