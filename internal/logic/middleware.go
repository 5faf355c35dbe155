package logic

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ctxUserID    = "uid"
	ctxClaims    = "claims"
	ctxRequestID = "requestID"
)

// UserMetadata 身份服务写入令牌的用户资料
type UserMetadata struct {
	ParticipantID string `json:"participant_id"`
}

// Claims 身份服务签发的访问令牌, sub 为用户 ID
type Claims struct {
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
	jwt.RegisteredClaims
}

func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	})
}

// RequestLogger 为每个请求分配 requestID 并记录耗时
func RequestLogger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.New().String()
		c.Set(ctxRequestID, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		logger.Infow("request",
			"requestID", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"clientIP", c.ClientIP(),
			"latency", time.Since(start).String(),
		)
	}
}

// AuthMiddleware 校验 Bearer 令牌, 通过后把用户 ID 与声明放入 gin.Context
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			respondError(c, http.StatusUnauthorized, codeUnauthorized, msgUnauthorized)
			return
		}

		claims, err := parseToken(strings.TrimSpace(tokenString), secret)
		if err != nil {
			respondError(c, http.StatusUnauthorized, codeUnauthorized, msgUnauthorized)
			return
		}

		c.Set(ctxUserID, claims.Subject)
		c.Set(ctxClaims, claims)
		c.Next()
	}
}

func parseToken(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	return claims, nil
}

func currentUser(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func currentClaims(c *gin.Context) *Claims {
	if v, ok := c.Get(ctxClaims); ok {
		if claims, ok := v.(*Claims); ok {
			return claims
		}
	}
	return &Claims{}
}

// recoverWith 在路由边界捕获 panic, 按该路由的错误码返回
func recoverWith(logger *zap.SugaredLogger, code, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorw("handler panic",
					"path", c.Request.URL.Path,
					"requestID", c.GetString(ctxRequestID),
					"panic", r,
				)
				respondError(c, http.StatusInternalServerError, code, message)
			}
		}()
		c.Next()
	}
}
