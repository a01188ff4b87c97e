// Package storage 提供可互换的 blob 存储后端。
// 进程启动时根据 OSS 凭证是否齐备选定一个后端，之后所有上传/删除都走同一实例，
// 业务代码不感知具体模式。
package storage

import (
	"context"
	"io"

	"github.com/zygggggg/blog/internal/config"
)

// SaveResult 封装一次成功写入后的对象信息。
type SaveResult struct {
	// Key 后端内的对象键：本地模式为文件名，OSS 模式为 album/ 前缀的对象键
	Key string
	// URL 外部可直接访问的地址，上传时计算一次后原样落库
	URL string
}

// Backend 是所有存储后端必须实现的能力接口。
type Backend interface {
	// Save 以生成好的文件名持久化一个 blob。
	Save(ctx context.Context, name string, r io.Reader) (*SaveResult, error)
	// Remove 删除对象键对应的 blob。调用方决定失败是否致命。
	Remove(ctx context.Context, key string) error
	// Mode 返回后端模式名（local / oss），用于健康检查与启动横幅。
	Mode() string
}

// NewFromConfig 根据配置选定存储后端。OSS 凭证齐备时走对象存储，否则落本地磁盘。
func NewFromConfig(cfg config.Config) (Backend, error) {
	if cfg.OSS.Enabled() {
		return NewOSSBackend(cfg.OSS)
	}
	return NewDiskBackend(cfg.Upload.Path, cfg.Upload.BaseURL), nil
}
