package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// DiskBackend 本地磁盘后端，文件平铺在一个固定目录下。
type DiskBackend struct {
	root    string
	baseURL string
}

func NewDiskBackend(root, baseURL string) *DiskBackend {
	return &DiskBackend{root: root, baseURL: baseURL}
}

func (b *DiskBackend) Mode() string {
	return "local"
}

// Save 把 blob 写入 root/name。对象键就是文件名本身。
func (b *DiskBackend) Save(ctx context.Context, name string, r io.Reader) (*SaveResult, error) {
	if err := os.MkdirAll(b.root, 0755); err != nil {
		return nil, err
	}

	dst := filepath.Join(b.root, name)
	out, err := os.Create(dst)
	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		// 写了一半的文件不能留下
		_ = os.Remove(dst)
		return nil, err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return nil, err
	}

	return &SaveResult{Key: name, URL: b.baseURL + name}, nil
}

// Remove 删除本地文件；文件本就不存在时视为删除成功。
func (b *DiskBackend) Remove(ctx context.Context, key string) error {
	// key 来自数据库而非用户输入，Base 仅防御历史脏数据里的路径分隔符
	p := filepath.Join(b.root, filepath.Base(key))
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Root 返回落盘目录，供静态文件路由挂载。
func (b *DiskBackend) Root() string {
	return b.root
}
