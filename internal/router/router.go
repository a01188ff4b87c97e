package router

import (
	"github.com/zygggggg/blog/internal/handler"
	"github.com/zygggggg/blog/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Router struct {
	handler *handler.Handler
}

func NewRouter(h *handler.Handler) *Router {
	return &Router{handler: h}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware())

	// 写接口限流：上传和留言共用同一个实例，保持行为一致
	writeLimiter := middleware.RateLimitMiddleware()

	album := api.Group("/album")
	{
		album.GET("/health", rt.handler.Health)
		album.POST("/upload", middleware.UploadBodyLimitMiddleware(), writeLimiter, rt.handler.UploadImage)
		album.GET("/list", rt.handler.GetImageList)
		album.DELETE("/delete/:id", rt.handler.DeleteImage)
	}

	board := api.Group("/board")
	{
		board.POST("/post", writeLimiter, rt.handler.PostMessage)
		board.GET("/list", rt.handler.GetMessageList)
		board.DELETE("/delete/:id", rt.handler.DeleteMessage)
		board.DELETE("/clear", rt.handler.ClearMessages)
	}
}
