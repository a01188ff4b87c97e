package httpx

import (
	"net/http"

	"github.com/zygggggg/blog/internal/common"

	"github.com/gin-gonic/gin"
)

// Response 统一响应包裹。code 为 200 表示成功，其余为 HTTP 状态码。
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// OK 写出成功响应。
func OK(c *gin.Context, data interface{}, message string) {
	if message == "" {
		message = "success"
	}
	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Message: message, Data: data})
}

// Fail 写出失败响应，HTTP 状态码与包裹里的 code 保持一致。
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Code: status, Message: message, Data: nil})
}

// WriteServiceError 将服务层错误写为统一响应；无法识别的错误按 500 处理。
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	if serviceErr, ok := common.AsServiceError(err); ok {
		Fail(c, serviceErr.HTTPStatus(), serviceErr.Message)
		return
	}
	Fail(c, http.StatusInternalServerError, fallbackMessage)
}
