package handler

import (
	"log"
	"strconv"

	"github.com/zygggggg/blog/internal/common"
	"github.com/zygggggg/blog/internal/common/httpx"
	"github.com/zygggggg/blog/internal/model"

	"github.com/gin-gonic/gin"
)

// Health 健康检查，返回当前存储模式
func (h *Handler) Health(c *gin.Context) {
	httpx.OK(c, h.albumService.HealthBanner(), "")
}

// UploadImage 上传图片
func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		httpx.Fail(c, 400, "请选择要上传的文件")
		return
	}
	description := c.PostForm("description")

	log.Printf("📤 Upload image request received, filename: %s", file.Filename)

	image, err := h.albumService.Upload(c.Request.Context(), file, description)
	if err != nil {
		if _, ok := common.AsServiceError(err); !ok {
			log.Printf("Upload failed: %v", err)
		}
		httpx.WriteServiceError(c, err, "上传失败，请稍后重试")
		return
	}

	log.Printf("✅ Upload successful, ID: %d", image.ID)
	httpx.OK(c, image, "上传成功")
}

// GetImageList 分页获取图片列表
func (h *Handler) GetImageList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	images, total, page, size, err := h.albumService.List(page, size)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取列表失败")
		return
	}

	if images == nil {
		images = []model.AlbumImage{}
	}

	httpx.OK(c, gin.H{
		"list":       images,
		"total":      total,
		"page":       page,
		"size":       size,
		"totalPages": totalPages(total, size),
	}, "")
}

// DeleteImage 删除图片（软删除，后端文件尽力清理）
func (h *Handler) DeleteImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httpx.Fail(c, 400, "id 参数错误")
		return
	}

	log.Printf("🗑️  Delete image request received, id: %d", id)

	if err := h.albumService.Delete(c.Request.Context(), uint(id)); err != nil {
		httpx.WriteServiceError(c, err, "删除失败")
		return
	}

	httpx.OK(c, nil, "删除成功")
}

// totalPages 计算总页数，向上取整。
func totalPages(total int64, size int) int64 {
	if size <= 0 {
		return 0
	}
	return (total + int64(size) - 1) / int64(size)
}
