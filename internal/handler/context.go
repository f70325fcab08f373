package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"agrimatch/internal/model"
)

// currentUser extracts the authenticated user's ID and role from the JWT
// placed in the context by the echo-jwt middleware. echo-jwt parses with
// golang-jwt/jwt/v5, so the context token is a v5 *jwt.Token.
func currentUser(c echo.Context) (uint, model.Role, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	role, _ := claims["role"].(string)

	return uint(userID), model.Role(role), nil
}
