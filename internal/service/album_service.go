package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/zygggggg/blog/internal/common"
	"github.com/zygggggg/blog/internal/consts"
	"github.com/zygggggg/blog/internal/model"
	"github.com/zygggggg/blog/internal/repository"
	"github.com/zygggggg/blog/internal/storage"

	"gorm.io/gorm"
)

// AlbumService 相册核心业务：上传、分页列表、软删除。
// 存储后端在构造时注入，业务逻辑不区分本地还是 OSS。
type AlbumService struct {
	store   repository.AlbumStore
	backend storage.Backend
}

func NewAlbumService(store repository.AlbumStore, backend storage.Backend) *AlbumService {
	return &AlbumService{store: store, backend: backend}
}

// ValidateImageFile 验证上传文件的大小、扩展名和 MIME 类型。
// 扩展名按小写比较，生成文件名时仍保留原样。
func ValidateImageFile(file *multipart.FileHeader) error {
	if file == nil || file.Size == 0 {
		return common.NewValidationError("请选择要上传的文件")
	}

	if file.Size > int64(consts.MaxUploadSizeMB)*1024*1024 {
		return common.NewValidationError(fmt.Sprintf("文件大小不能超过 %dMB", consts.MaxUploadSizeMB))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !consts.AllowedImageExtensions[ext] {
		return common.NewValidationError("只支持图片格式: jpeg, jpg, png, gif, webp")
	}

	mimeType := strings.ToLower(file.Header.Get("Content-Type"))
	if !consts.AllowedImageMimeTypes[mimeType] {
		return common.NewValidationError("只支持图片格式: jpeg, jpg, png, gif, webp")
	}

	return nil
}

// Upload 处理一次图片上传：校验 → 写存储后端 → 落库。
// 后端写入失败时不会留下任何数据库记录；落库失败时后端里的文件不回收，
// 作为孤儿文件接受（见 DESIGN.md）。
func (s *AlbumService) Upload(ctx context.Context, file *multipart.FileHeader, description string) (*model.AlbumImage, error) {
	if err := ValidateImageFile(file); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, common.NewInternalError("无法读取上传文件")
	}
	defer func() { _ = src.Close() }()

	name := storage.NewObjectName(file.Filename)

	result, err := s.backend.Save(ctx, name, src)
	if err != nil {
		log.Printf("❌ 存储后端写入失败: %v", err)
		return nil, common.NewStorageError("文件保存失败")
	}

	now := time.Now()
	image := model.AlbumImage{
		FileName:     result.Key,
		OriginalName: file.Filename,
		FileURL:      result.URL,
		FileSize:     file.Size,
		FileType:     file.Header.Get("Content-Type"),
		Description:  description,
		UploadTime:   now,
		UpdateTime:   now,
	}

	if err := s.store.Create(&image); err != nil {
		// 文件已经写进后端，此处不回滚，留下孤儿文件
		log.Printf("❌ 图片记录落库失败，后端遗留孤儿对象 %s: %v", result.Key, err)
		return nil, common.NewPersistenceError("数据库记录失败")
	}

	return &image, nil
}

// List 分页返回未删除的图片，按 sort_order 降序、upload_time 降序排列。
// 返回归一化后的 page/size，便于调用方回显。
func (s *AlbumService) List(page, size int) ([]model.AlbumImage, int64, int, int, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = consts.DefaultAlbumPageSize
	}
	if size > consts.MaxPageSize {
		size = consts.MaxPageSize
	}

	images, total, err := s.store.ListLive((page-1)*size, size)
	if err != nil {
		return nil, 0, page, size, common.NewInternalError("获取列表失败")
	}

	return images, total, page, size, nil
}

// Delete 软删除一张图片。后端文件删除是尽力而为：失败只记日志，
// 数据库删除标记才是这条操作的真正契约。
func (s *AlbumService) Delete(ctx context.Context, id uint) error {
	image, err := s.store.FindLiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("图片不存在")
		}
		return common.NewInternalError("查询图片失败")
	}

	if err := s.backend.Remove(ctx, image.FileName); err != nil {
		log.Printf("⚠️  后端文件删除失败，继续删除数据库记录 key=%s: %v", image.FileName, err)
	}

	if err := s.store.SoftDelete(id, time.Now()); err != nil {
		return common.NewInternalError("删除失败")
	}

	return nil
}

// HealthBanner 返回健康检查文案，带当前存储模式。
func (s *AlbumService) HealthBanner() string {
	mode := "Local"
	if s.backend.Mode() == "oss" {
		mode = "OSS"
	}
	return fmt.Sprintf("Album service is running (%s Storage Mode)", mode)
}
