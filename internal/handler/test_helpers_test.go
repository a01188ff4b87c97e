package handler

import (
	"encoding/json"
	"testing"

	"github.com/zygggggg/blog/internal/repository"
	"github.com/zygggggg/blog/internal/service"
	"github.com/zygggggg/blog/internal/storage"
	"github.com/zygggggg/blog/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupTestServer 用临时目录的本地后端和内存数据库搭一个完整的路由。
func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB, *storage.DiskBackend) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutils.SetupDB(t)
	backend := storage.NewDiskBackend(t.TempDir(), "http://test.local/uploads/")

	albumService := service.NewAlbumService(repository.NewAlbumRepository(gdb), backend)
	boardService := service.NewBoardService(repository.NewBoardRepository(gdb))
	h := NewHandler(albumService, boardService)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/album/health", h.Health)
	api.POST("/album/upload", h.UploadImage)
	api.GET("/album/list", h.GetImageList)
	api.DELETE("/album/delete/:id", h.DeleteImage)
	api.POST("/board/post", h.PostMessage)
	api.GET("/board/list", h.GetMessageList)
	api.DELETE("/board/delete/:id", h.DeleteMessage)
	api.DELETE("/board/clear", h.ClearMessages)

	return r, gdb, backend
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("响应不是合法 JSON: %v body=%s", err, body)
	}
	return env
}
