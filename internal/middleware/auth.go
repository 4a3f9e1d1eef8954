package middleware

import (
	stderrors "errors"
	"fmt"
	"strings"

	"fintrack/internal/errors"
	"fintrack/internal/handlers"
	"fintrack/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// RequireUser creates a middleware that resolves the calling user from
// a bearer token. Tokens are HS256 with the user ID in the subject
// claim; issuing them is outside this service. The resolved user ID is
// stored under "user_id" for handlers.
func RequireUser(secret, issuer string, userRepo repositories.UserRepositoryInterface) echo.MiddlewareFunc {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}

	parseOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if issuer != "" {
		parseOpts = append(parseOpts, jwt.WithIssuer(issuer))
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			if !strings.HasPrefix(authHeader, bearerPrefix) {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			token, err := jwt.ParseWithClaims(
				strings.TrimPrefix(authHeader, bearerPrefix),
				&jwt.RegisteredClaims{},
				keyFunc,
				parseOpts...,
			)
			if err != nil {
				if stderrors.Is(err, jwt.ErrTokenExpired) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, ok := token.Claims.(*jwt.RegisteredClaims)
			if !ok || claims.Subject == "" {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Missing subject claim"))
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Subject is not a valid user ID"))
			}

			user, err := userRepo.GetByID(userID)
			if err != nil {
				if stderrors.Is(err, repositories.ErrUserNotFound) {
					return handlers.SendError(c, errors.AuthUnknownUser)
				}
				return handlers.SendSystemError(c, err)
			}

			c.Set("user_id", user.ID)
			c.Set("user_email", user.Email)

			return next(c)
		}
	}
}

// UserID extracts the resolved user ID from the Echo context. The
// second return is false outside RequireUser-protected routes.
func UserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}
