package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"

	"github.com/zygggggg/blog/internal/storage"
)

// fakeBackend 内存存储后端，可按需注入写入/删除失败。
type fakeBackend struct {
	mu         sync.Mutex
	objects    map[string][]byte
	failSave   bool
	failRemove bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{objects: make(map[string][]byte)}
}

func (b *fakeBackend) Save(ctx context.Context, name string, r io.Reader) (*storage.SaveResult, error) {
	if b.failSave {
		return nil, errors.New("backend unreachable")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	b.objects[name] = data
	b.mu.Unlock()
	return &storage.SaveResult{Key: name, URL: "http://fake/" + name}, nil
}

func (b *fakeBackend) Remove(ctx context.Context, key string) error {
	if b.failRemove {
		return errors.New("backend unreachable")
	}
	b.mu.Lock()
	delete(b.objects, key)
	b.mu.Unlock()
	return nil
}

func (b *fakeBackend) Mode() string {
	return "local"
}

func (b *fakeBackend) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.objects)
}

// newFileHeader 构造一个带指定文件名和 Content-Type 的 multipart.FileHeader。
func newFileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	_, fh, err := req.FormFile("file")
	if err != nil {
		t.Fatalf("parse form file: %v", err)
	}
	return fh
}
