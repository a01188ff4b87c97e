package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/zygggggg/blog/internal/consts"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 限制普通 JSON 接口的请求体大小
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 跳过上传路由，它有自己的限制
		if strings.HasSuffix(c.Request.URL.Path, "/upload") {
			c.Next()
			return
		}

		// 留言正文撑死几 KB，2MB 足够宽裕
		maxBytes := int64(2) * 1024 * 1024

		// 使用 MaxBytesReader 限制读取的字节数
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制上传接口的请求体大小
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxBytes := int64(consts.MaxUploadSizeMB) * 1024 * 1024
		// multipart 自身有头部开销，留 1MB 余量，精确的 10MB 校验在服务层做
		maxBytes += 1024 * 1024

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"code":    http.StatusRequestEntityTooLarge,
				"message": fmt.Sprintf("文件大小不能超过 %dMB", consts.MaxUploadSizeMB),
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
