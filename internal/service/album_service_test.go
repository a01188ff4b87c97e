package service

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/zygggggg/blog/internal/common"
	"github.com/zygggggg/blog/internal/model"
	"github.com/zygggggg/blog/internal/repository"
	"github.com/zygggggg/blog/internal/testutils"
)

func setupAlbumService(t *testing.T) (*AlbumService, *fakeBackend, repository.AlbumStore) {
	gdb := testutils.SetupDB(t)
	store := repository.NewAlbumRepository(gdb)
	backend := newFakeBackend()
	return NewAlbumService(store, backend), backend, store
}

// 测试内容：验证非法类型、超大文件和空文件都被拒绝，且不产生任何记录或后端对象。
func TestUploadValidation(t *testing.T) {
	svc, backend, store := setupAlbumService(t)

	png := testutils.MinimalPNG()
	cases := []struct {
		name        string
		filename    string
		contentType string
		data        []byte
	}{
		{"扩展名不允许", "evil.exe", "image/png", png},
		{"MIME 不允许", "a.png", "application/octet-stream", png},
		{"无扩展名", "noext", "image/png", png},
		{"超过大小限制", "big.png", "image/png", make([]byte, 10*1024*1024+1)},
		{"空文件", "empty.png", "image/png", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fh := newFileHeader(t, tc.filename, tc.contentType, tc.data)
			_, err := svc.Upload(context.Background(), fh, "")
			serviceErr, ok := common.AsServiceError(err)
			if !ok || serviceErr.Code != common.ErrorCodeValidation {
				t.Fatalf("期望 ValidationError，实际为 %v", err)
			}
		})
	}

	if backend.count() != 0 {
		t.Fatalf("校验失败不应写入后端，实际有 %d 个对象", backend.count())
	}
	if _, total, err := store.ListLive(0, 10); err != nil || total != 0 {
		t.Fatalf("校验失败不应落库, total=%d err=%v", total, err)
	}
}

// 测试内容：验证上传成功后返回完整记录，对象键符合命名规则。
func TestUploadSuccess(t *testing.T) {
	svc, backend, _ := setupAlbumService(t)

	fh := newFileHeader(t, "我的照片.png", "image/png", testutils.MinimalPNG())
	image, err := svc.Upload(context.Background(), fh, "海边")
	if err != nil {
		t.Fatalf("upload 失败: %v", err)
	}

	if image.ID == 0 {
		t.Fatalf("期望分配 ID")
	}
	if image.OriginalName != "我的照片.png" {
		t.Fatalf("非预期 originalName: %s", image.OriginalName)
	}
	if image.Description != "海边" {
		t.Fatalf("非预期 description: %s", image.Description)
	}
	if image.FileURL != "http://fake/"+image.FileName {
		t.Fatalf("fileUrl 应与后端返回一致: %s", image.FileURL)
	}
	if matched := regexp.MustCompile(`^\d{13}_[0-9a-z]{6}\.png$`).MatchString(image.FileName); !matched {
		t.Fatalf("对象键格式不符: %s", image.FileName)
	}
	if backend.count() != 1 {
		t.Fatalf("期望后端有 1 个对象，实际 %d", backend.count())
	}
}

// 测试内容：验证后端写入失败时不会留下任何数据库记录。
func TestUploadBackendFailureLeavesNoRecord(t *testing.T) {
	svc, backend, store := setupAlbumService(t)
	backend.failSave = true

	fh := newFileHeader(t, "a.png", "image/png", testutils.MinimalPNG())
	_, err := svc.Upload(context.Background(), fh, "")
	serviceErr, ok := common.AsServiceError(err)
	if !ok || serviceErr.Code != common.ErrorCodeStorage {
		t.Fatalf("期望 StorageError，实际为 %v", err)
	}

	if _, total, err := store.ListLive(0, 10); err != nil || total != 0 {
		t.Fatalf("后端写入失败后不应有记录, total=%d err=%v", total, err)
	}
}

// 测试内容：验证软删除后列表不可见、行仍存在、重复删除返回 404。
func TestDeleteSoftDeleteVisibility(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := repository.NewAlbumRepository(gdb)
	svc := NewAlbumService(store, newFakeBackend())

	fh := newFileHeader(t, "a.png", "image/png", testutils.MinimalPNG())
	image, err := svc.Upload(context.Background(), fh, "")
	if err != nil {
		t.Fatalf("upload 失败: %v", err)
	}

	if err := svc.Delete(context.Background(), image.ID); err != nil {
		t.Fatalf("delete 失败: %v", err)
	}

	// 列表不可见
	if _, total, err := store.ListLive(0, 10); err != nil || total != 0 {
		t.Fatalf("删除后列表应为空, total=%d err=%v", total, err)
	}

	// 行仍然存在，且删除标记和 update_time 已打
	var row model.AlbumImage
	if err := gdb.First(&row, image.ID).Error; err != nil {
		t.Fatalf("软删除后行应保留: %v", err)
	}
	if !row.IsDeleted {
		t.Fatalf("期望 is_deleted = true")
	}
	if !row.UpdateTime.After(row.UploadTime) && !row.UpdateTime.Equal(row.UploadTime) {
		t.Fatalf("期望 update_time 被更新")
	}

	// 重复删除返回 404
	err = svc.Delete(context.Background(), image.ID)
	serviceErr, ok := common.AsServiceError(err)
	if !ok || serviceErr.Code != common.ErrorCodeNotFound {
		t.Fatalf("期望 NotFoundError，实际为 %v", err)
	}
}

// 测试内容：验证后端删除失败时软删除依然成功（尽力而为清理）。
func TestDeleteSucceedsWhenBackendRemoveFails(t *testing.T) {
	svc, backend, store := setupAlbumService(t)

	fh := newFileHeader(t, "a.png", "image/png", testutils.MinimalPNG())
	image, err := svc.Upload(context.Background(), fh, "")
	if err != nil {
		t.Fatalf("upload 失败: %v", err)
	}

	backend.failRemove = true
	if err := svc.Delete(context.Background(), image.ID); err != nil {
		t.Fatalf("后端删除失败不应影响软删除: %v", err)
	}

	if _, total, err := store.ListLive(0, 10); err != nil || total != 0 {
		t.Fatalf("删除后列表应为空, total=%d err=%v", total, err)
	}
	// 后端对象留存（孤儿），按设计接受
	if backend.count() != 1 {
		t.Fatalf("期望后端对象留存，实际 %d", backend.count())
	}
}

// 测试内容：验证 45 条记录按 size=20 分页的数学：3 页，末页 5 条，第 4 页为空且不报错。
func TestListPaginationMath(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := repository.NewAlbumRepository(gdb)
	svc := NewAlbumService(store, newFakeBackend())

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 45; i++ {
		img := model.AlbumImage{
			FileName:   fmt.Sprintf("f%02d.png", i),
			FileURL:    "http://fake/x",
			FileType:   "image/png",
			UploadTime: base.Add(time.Duration(i) * time.Second),
			UpdateTime: base,
		}
		if err := store.Create(&img); err != nil {
			t.Fatalf("seed 失败: %v", err)
		}
	}

	images, total, page, size, err := svc.List(1, 20)
	if err != nil || len(images) != 20 || total != 45 {
		t.Fatalf("page1 期望 20/45, 实际 %d/%d err=%v", len(images), total, err)
	}
	if page != 1 || size != 20 {
		t.Fatalf("归一化后的 page/size 不符: %d/%d", page, size)
	}

	images, _, _, _, err = svc.List(3, 20)
	if err != nil || len(images) != 5 {
		t.Fatalf("page3 期望 5 条, 实际 %d err=%v", len(images), err)
	}

	images, total, _, _, err = svc.List(4, 20)
	if err != nil || len(images) != 0 || total != 45 {
		t.Fatalf("page4 期望 0 条且不报错, 实际 %d/%d err=%v", len(images), total, err)
	}

	// 非法参数回落默认值，超大 size 被钳制
	_, _, page, size, _ = svc.List(0, 0)
	if page != 1 || size != 20 {
		t.Fatalf("默认值不符: page=%d size=%d", page, size)
	}
	_, _, _, size, _ = svc.List(1, 100000)
	if size != 100 {
		t.Fatalf("size 应被钳制到 100, 实际 %d", size)
	}
}

// 测试内容：验证排序规则，sort_order 优先，相同时后上传的排前面。
func TestListOrdering(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := repository.NewAlbumRepository(gdb)
	svc := NewAlbumService(store, newFakeBackend())

	now := time.Now()
	older := model.AlbumImage{FileName: "older.png", FileURL: "u", FileType: "image/png", UploadTime: now.Add(-time.Minute), UpdateTime: now}
	newer := model.AlbumImage{FileName: "newer.png", FileURL: "u", FileType: "image/png", UploadTime: now, UpdateTime: now}
	pinned := model.AlbumImage{FileName: "pinned.png", FileURL: "u", FileType: "image/png", UploadTime: now.Add(-time.Hour), UpdateTime: now, SortOrder: 10}

	for _, img := range []*model.AlbumImage{&older, &newer, &pinned} {
		if err := store.Create(img); err != nil {
			t.Fatalf("seed 失败: %v", err)
		}
	}

	images, _, _, _, err := svc.List(1, 10)
	if err != nil {
		t.Fatalf("list 失败: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("期望 3 条, 实际 %d", len(images))
	}
	if images[0].FileName != "pinned.png" {
		t.Fatalf("sort_order 高的应排第一, 实际 %s", images[0].FileName)
	}
	if images[1].FileName != "newer.png" || images[2].FileName != "older.png" {
		t.Fatalf("相同 sort_order 应按上传时间倒序: %s, %s", images[1].FileName, images[2].FileName)
	}
}

// 测试内容：验证健康检查文案携带当前存储模式。
func TestHealthBanner(t *testing.T) {
	svc, _, _ := setupAlbumService(t)
	if got := svc.HealthBanner(); got != "Album service is running (Local Storage Mode)" {
		t.Fatalf("非预期健康检查文案: %s", got)
	}
}
