package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/pharmatrust/custody/internal/api/shared/errors"
	"github.com/pharmatrust/custody/internal/domain"
	"github.com/pharmatrust/custody/internal/logger"
)

const (
	// AuthSubjectKey holds the authenticated user ref in the gin context
	AuthSubjectKey = "auth_subject"
	// AuthRoleKey holds the authenticated user role in the gin context
	AuthRoleKey = "auth_role"
	// AuthTypeKey holds the authentication mechanism used
	AuthTypeKey = "auth_type"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// Claims are the JWT claims issued by the identity service: the subject is
// the user ref and the role is the platform role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth returns a gin middleware accepting JWT (Bearer) or API key auth
func Auth(cfg AuthConfig) gin.HandlerFunc {
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, errors.New("missing Authorization header"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 {
			abortUnauthorized(c, errors.New("invalid Authorization header format"))
			return
		}

		switch strings.ToLower(parts[0]) {
		case "bearer":
			claims, err := validateJWT(parts[1], cfg.JWTPublicKey)
			if err != nil {
				abortUnauthorized(c, err)
				return
			}
			c.Set(AuthTypeKey, "jwt")
			c.Set(AuthSubjectKey, claims.Subject)
			c.Set(AuthRoleKey, claims.Role)

		case "apikey":
			if len(apiKeyMap) == 0 || !apiKeyMap[parts[1]] {
				abortUnauthorized(c, errors.New("invalid API key"))
				return
			}
			c.Set(AuthTypeKey, "apikey")
			c.Set(AuthRoleKey, string(domain.RoleAdmin))

		default:
			abortUnauthorized(c, fmt.Errorf("unsupported authorization type: %s", parts[0]))
			return
		}

		c.Next()
	}
}

// RequireRole restricts a route to the given roles; must run after Auth
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[string(role)] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(AuthRoleKey)
		if !allowed[role] {
			apiErr := apierrors.NewForbiddenError("Insufficient role", fmt.Sprintf("role %q is not permitted", role))
			c.AbortWithStatusJSON(http.StatusForbidden, apiErr)
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	logger.Warn("authentication failed",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("client_ip", c.ClientIP()))

	apiErr := apierrors.NewUnauthorizedError("Authentication failed", err.Error())
	c.AbortWithStatusJSON(http.StatusUnauthorized, apiErr)
}

// validateJWT validates a JWT token with RSA signature and returns claims
func validateJWT(tokenString string, publicKeyPEM string) (*Claims, error) {
	if publicKeyPEM == "" {
		return nil, errors.New("JWT public key not configured")
	}

	publicKey, err := parseRSAPublicKey(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
