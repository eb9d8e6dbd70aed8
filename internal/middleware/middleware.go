package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"talenthub/internal/config"
	"talenthub/internal/logger"
	"talenthub/internal/models"
)

type Middleware func(http.Handler) http.Handler

type contextKey string

const (
	viewerIDKey    contextKey = "viewerID"
	viewerEmailKey contextKey = "viewerEmail"
	viewerRoleKey  contextKey = "viewerRole"
)

// ViewerID returns the authenticated viewer's profile id, or "" when the
// request carried no valid token. The feed treats "" as an anonymous
// viewer, not an error.
func ViewerID(ctx context.Context) string {
	id, _ := ctx.Value(viewerIDKey).(string)
	return id
}

func ViewerEmail(ctx context.Context) string {
	email, _ := ctx.Value(viewerEmailKey).(string)
	return email
}

func ViewerRole(ctx context.Context) string {
	role, _ := ctx.Value(viewerRoleKey).(string)
	return role
}

// Auth parses a Bearer token when one is present and annotates the request
// context with the viewer's identity. Requests without a token pass through
// unauthenticated; endpoints that need a principal check for one
// themselves. A malformed or expired token is still a hard 401.
func Auth(cfg *config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeUnauthorized(w, "invalid token format")
				return
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(cfg.JWTSecretKey), nil
			})
			if err != nil || !token.Valid {
				writeUnauthorized(w, "invalid token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				writeUnauthorized(w, "invalid token claims")
				return
			}

			profileID, ok1 := claims["profileId"].(string)
			email, ok2 := claims["email"].(string)
			role, ok3 := claims["role"].(string)
			if !ok1 || !ok2 || !ok3 {
				writeUnauthorized(w, "incomplete token claims")
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, viewerIDKey, profileID)
			ctx = context.WithValue(ctx, viewerEmailKey, email)
			ctx = context.WithValue(ctx, viewerRoleKey, role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly gates moderation endpoints.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ViewerRole(r.Context()) != models.RoleAdmin {
			http.Error(w, `{"error":"admin role required"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func Logging(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			log.Infow("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", recorder.status,
				"duration", time.Since(start),
			)
		})
	}
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprintf(w, `{"error":%q}`, message)
}
