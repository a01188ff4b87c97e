package storage

import (
	"crypto/rand"
	"fmt"
	"path/filepath"
	"time"
)

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewObjectName 生成 <毫秒时间戳>_<6位随机base36><原始扩展名> 形式的文件名。
// 毫秒时间戳加随机后缀在实践中足以避免碰撞，不需要协调步骤；
// 扩展名从客户端文件名原样取出（类型校验另行按小写比较）。
func NewObjectName(originalName string) string {
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), randBase36(6), filepath.Ext(originalName))
}

func randBase36(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand 不可用时退化为时间噪声，几乎不会发生
		for i := range buf {
			buf[i] = byte(time.Now().UnixNano() >> (i * 8))
		}
	}
	for i := range buf {
		buf[i] = base36Chars[int(buf[i])%len(base36Chars)]
	}
	return string(buf)
}
