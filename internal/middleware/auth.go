package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"yuancity-finance-portal/internal/model"
	"yuancity-finance-portal/internal/repository"
	"yuancity-finance-portal/internal/service"
)

const userContextKey = "user"

// AuthScheme is the authorization scheme the mobile and web clients send.
// It predates this service; changing it would break deployed apps.
const AuthScheme = "JWT"

// JWTAuth validates the Authorization header and loads the authenticated
// user into the request context.
func JWTAuth(authService service.AuthService, userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"detail": "Las credenciales de autenticación no se proveyeron.",
				})
			}

			scheme, token, found := strings.Cut(header, " ")
			if !found || scheme != AuthScheme || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"detail": "Encabezado de autorización inválido.",
				})
			}

			userID, err := authService.ParseAccess(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"detail": "El token dado no es válido para ningún tipo de token.",
				})
			}

			user, err := userRepo.FindByID(c.Request().Context(), userID)
			if err != nil || !user.IsActive {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"detail": "Usuario no encontrado o inactivo.",
				})
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// AdminOnly rejects non-staff users with the portal's Spanish detail message.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil || !user.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, map[string]string{
					"detail": "No tienes permisos para ver este panel.",
				})
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user, nil when unauthenticated.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}
