package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/zygggggg/blog/internal/config"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// 对象键统一挂在 album/ 目录下
const ossKeyPrefix = "album/"

// OSSBackend 阿里云 OSS 后端。客户端在构造时建立一次，进程内复用。
type OSSBackend struct {
	bucket    *oss.Bucket
	urlPrefix string
}

func NewOSSBackend(cfg config.OSSConfig) (*OSSBackend, error) {
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("创建 OSS 客户端失败: %w", err)
	}

	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("获取 OSS 存储桶失败: %w", err)
	}

	urlPrefix := cfg.URLPrefix
	if urlPrefix == "" {
		// 未显式配置时按 bucket 外网地址推导
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
		urlPrefix = fmt.Sprintf("https://%s.%s/", cfg.Bucket, host)
	}
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}

	return &OSSBackend{bucket: bucket, urlPrefix: urlPrefix}, nil
}

func (b *OSSBackend) Mode() string {
	return "oss"
}

// Save 上传到 album/<name>，公网地址由 URL 前缀拼接对象键得出。
func (b *OSSBackend) Save(ctx context.Context, name string, r io.Reader) (*SaveResult, error) {
	key := ossKeyPrefix + name
	if err := b.bucket.PutObject(key, r); err != nil {
		return nil, fmt.Errorf("上传到 OSS 失败: %w", err)
	}
	return &SaveResult{Key: key, URL: b.urlPrefix + key}, nil
}

// Remove 删除 OSS 对象。键里已含 album/ 前缀，直接使用。
func (b *OSSBackend) Remove(ctx context.Context, key string) error {
	if err := b.bucket.DeleteObject(key); err != nil {
		return fmt.Errorf("删除 OSS 对象失败: %w", err)
	}
	return nil
}
