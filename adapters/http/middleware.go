package http

import (
	"context"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/persistence"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/analytics"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	GinContextKeyRequestID = "request_id"
	GinContextKeySession   = "session"

	HeaderRequestID = "X-Request-ID"
)

// SessionStore hands out one pinned connection per request.
type SessionStore interface {
	Acquire(ctx context.Context) (*persistence.Session, error)
	Ping(ctx context.Context) error
}

// RequestID reuses the caller's X-Request-ID or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(GinContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(GinContextKeyRequestID)
}

// Recovery turns a panic into the generic 500 body.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Panic recovered", nil,
					zap.String("request_id", GetRequestID(c)),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", err),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, apperror.InternalJSON())
			}
		}()

		c.Next()
	}
}

func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqPath := c.Request.URL.Path

		c.Next()

		log.Info("HTTP Request",
			zap.String("request_id", GetRequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", reqPath),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}

// CORS allows the configured origins with credentials. A "*" entry allows
// any origin. Preflight requests are answered directly.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowAll := false
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
		allowed[strings.TrimRight(o, "/")] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}
		c.Writer.Header().Add("Vary", "Origin")

		_, ok := allowed[origin]
		if !ok && !allowAll {
			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Expose-Headers", HeaderRequestID)

		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			if reqHeaders := c.GetHeader("Access-Control-Request-Headers"); reqHeaders != "" {
				c.Header("Access-Control-Allow-Headers", reqHeaders)
			}
			c.Header("Access-Control-Max-Age", "600")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Session acquires a store session for the request and always releases it,
// including when a handler panics.
func Session(store SessionStore, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := store.Acquire(c.Request.Context())
		if err != nil {
			c.Error(apperror.NewUnavailable("database session unavailable", err))
			c.Abort()
			return
		}
		defer func() {
			if err := sess.Close(); err != nil {
				log.Warn("Failed to release database session", zap.String("request_id", GetRequestID(c)), zap.Error(err))
			}
		}()

		c.Set(GinContextKeySession, sess.Repositories)
		c.Next()
	}
}

func GetRepositories(c *gin.Context) (service.Repositories, bool) {
	v, ok := c.Get(GinContextKeySession)
	if !ok {
		return service.Repositories{}, false
	}
	repos, ok := v.(service.Repositories)
	return repos, ok
}

// ErrorHandler renders the last error a handler attached with c.Error.
// Anything that is not an exposed AppError becomes the generic 500.
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		if !apperror.IsExposed(err) {
			log.Error("Unhandled error", err,
				zap.String("request_id", GetRequestID(c)),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			c.JSON(http.StatusInternalServerError, apperror.InternalJSON())
			return
		}

		if status >= http.StatusInternalServerError {
			log.Warn("Request failed", zap.String("request_id", GetRequestID(c)), zap.Error(err))
		}
		appErr, _ := apperror.As(err)
		c.JSON(status, appErr.ToJSON())
	}
}

// ViewEvents publishes a portfolio.viewed event for every successful read
// in the group it is attached to.
func ViewEvents(publisher service.EventPublisher, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != http.MethodGet || len(c.Errors) > 0 || c.Writer.Status() != http.StatusOK {
			return
		}
		resource := path.Base(c.FullPath())
		e := analytics.NewEvent(analytics.EventPortfolioViewed, resource, GetRequestID(c))
		if err := publisher.Publish(c.Request.Context(), e); err != nil {
			log.Warn("Failed to publish view event", zap.String("resource", resource), zap.Error(err))
		}
	}
}
