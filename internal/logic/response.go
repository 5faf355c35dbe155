package logic

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 错误码
const (
	codeUnauthorized  = "UNAUTHORIZED"
	codeBadRequest    = "BAD_REQUEST"
	codeNotFound      = "NOT_FOUND"
	codeDatabaseError = "DATABASE_ERROR"
	codeAnalysisError = "ANALYSIS_ERROR"
	codeInternalError = "INTERNAL_ERROR"
)

const msgUnauthorized = "인증이 필요합니다."

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// envelope 所有接口统一的响应结构
type envelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, envelope{Success: false, Error: &apiError{Code: code, Message: message}})
}

func badRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, codeBadRequest, message)
}
