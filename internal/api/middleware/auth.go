// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"talentbridge/internal/models"
	"talentbridge/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	callerCtx           = "caller" // Key to store the caller identity in context
)

// JWTAuthMiddleware creates a Gin middleware for JWT authentication. A
// valid token resolves into a models.Caller stored in the context.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			log.Println("Auth middleware: Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			log.Println("Auth middleware: Invalid Authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		tokenString := headerParts[1]

		token, err := jwt.ParseWithClaims(tokenString, &services.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		claims, ok := token.Claims.(*services.SessionClaims)
		if !ok || !token.Valid {
			log.Println("Auth middleware: Invalid token claims or token is not valid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		caller, err := callerFromClaims(claims)
		if err != nil {
			log.Printf("Auth middleware: Error building caller from claims: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identifier in token"})
			return
		}

		c.Set(callerCtx, caller)
		c.Next()
	}
}

func callerFromClaims(claims *services.SessionClaims) (models.Caller, error) {
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return models.Caller{}, fmt.Errorf("parsing subject %q: %w", claims.Subject, err)
	}

	caller := models.Caller{
		Role: models.Role(claims.Role),
		ID:   userID,
	}
	if !caller.Role.IsValid() {
		return models.Caller{}, fmt.Errorf("unknown role %q", claims.Role)
	}

	if claims.EnterpriseID != "" {
		enterpriseID, err := uuid.Parse(claims.EnterpriseID)
		if err != nil {
			return models.Caller{}, fmt.Errorf("parsing enterprise id %q: %w", claims.EnterpriseID, err)
		}
		caller.EnterpriseID = enterpriseID
	}
	if claims.SchoolID != "" {
		schoolID, err := uuid.Parse(claims.SchoolID)
		if err != nil {
			return models.Caller{}, fmt.Errorf("parsing school id %q: %w", claims.SchoolID, err)
		}
		caller.SchoolID = schoolID
	}
	return caller, nil
}

// GetCallerFromContext returns the caller identity set by the auth middleware.
func GetCallerFromContext(c *gin.Context) (models.Caller, error) {
	callerAny, exists := c.Get(callerCtx)
	if !exists {
		return models.Caller{}, errors.New("caller not found in context")
	}

	caller, ok := callerAny.(models.Caller)
	if !ok {
		return models.Caller{}, errors.New("caller in context is of invalid type")
	}
	return caller, nil
}
