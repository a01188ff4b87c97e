package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/zygggggg/blog/internal/config"
	"github.com/zygggggg/blog/internal/consts"
	"github.com/zygggggg/blog/internal/db"
	"github.com/zygggggg/blog/internal/handler"
	"github.com/zygggggg/blog/internal/middleware"
	"github.com/zygggggg/blog/internal/repository"
	"github.com/zygggggg/blog/internal/router"
	"github.com/zygggggg/blog/internal/service"
	"github.com/zygggggg/blog/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configDir := flag.String("config", "config", "配置文件目录")
	flag.Parse()

	config.InitConfig(*configDir)
	db.InitDB()

	cfg := config.Get()

	// 选定存储后端：OSS 凭证齐备走对象存储，否则落本地磁盘，进程内不再切换
	backend, err := storage.NewFromConfig(cfg)
	if err != nil {
		log.Fatal("❌ 存储后端初始化失败: ", err)
	}
	log.Printf("💾 Storage Mode: %s", backend.Mode())

	if diskBackend, ok := backend.(*storage.DiskBackend); ok {
		checkSecurePath(diskBackend.Root())
		if err := os.MkdirAll(diskBackend.Root(), 0755); err != nil {
			log.Fatal("❌ 无法创建上传目录: ", err)
		}
	}

	albumService := service.NewAlbumService(repository.NewAlbumRepository(db.DB), backend)
	boardService := service.NewBoardService(repository.NewBoardRepository(db.DB))
	h := handler.NewHandler(albumService, boardService)

	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// 前端是独立部署的 Vue 应用和静态站点，跨域放开
	r.Use(cors.Default())

	router.NewRouter(h).Init(r)

	// 本地存储模式下由本进程直接服务上传文件
	if diskBackend, ok := backend.(*storage.DiskBackend); ok {
		r.Group(cfg.Upload.URLPrefix, middleware.StaticCacheMiddleware()).
			StaticFS("", gin.Dir(diskBackend.Root(), false))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"code": 404, "message": "接口不存在", "data": nil})
	})

	printWelcomeMessage(backend)

	// 停机配置
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		// 服务连接
		log.Printf("🚀 服务启动成功，运行在 :%s\n", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ 服务启动失败: %s\n", err)
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ 服务强制关闭:", err)
	}
	if err := service.CloseRedisClient(); err != nil {
		log.Printf("⚠️  Redis 关闭失败: %v", err)
	}
	log.Println("✅ 服务已退出")
}

func printWelcomeMessage(backend storage.Backend) {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s v%s\n", consts.ApplicationName, consts.ApplicationVersion)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   💾  存储模式 : %s\n", backend.Mode())
	fmt.Printf(" │   🔥  服务端口 : %s\n", config.Get().Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

func checkSecurePath(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		log.Fatalf("❌ 路径解析失败: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("❌ 无法获取当前工作目录: %v", err)
	}

	// 检查是否直接指向项目根目录
	if absPath == cwd {
		log.Fatalf("❌ 安全配置错误: 上传目录 '%s' 不能设置为项目根目录！这会导致源代码泄露。", path)
	}

	// 检查路径安全
	rel, err := filepath.Rel(cwd, absPath)
	if err == nil && !strings.HasPrefix(rel, "..") {
		// 统一路径分隔符为 / 方便匹配
		relSlash := filepath.ToSlash(rel)

		// 允许的安全目录列表
		// 只有位于这些目录下的路径才被允许作为上传目录
		allowedDirs := []string{
			"uploads",
			"public",
			"static",
			"tmp",
		}

		isAllowed := false
		firstComponent := strings.Split(relSlash, "/")[0]
		for _, allowed := range allowedDirs {
			if strings.EqualFold(firstComponent, allowed) {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			log.Fatalf("❌ 安全配置错误: 上传目录 '%s' (解析为: '%s') 必须位于项目根目录下的安全子目录中 (如 %v)。", path, relSlash, allowedDirs)
		}
	}
}
