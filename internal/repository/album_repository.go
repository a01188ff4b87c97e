package repository

import (
	"time"

	"github.com/zygggggg/blog/internal/model"
)

// AlbumStore 相册记录的持久化操作。所有读操作只看 is_deleted = false 的行；
// 软删除的行永久保留，不做物理删除。
type AlbumStore interface {
	Create(image *model.AlbumImage) error
	// ListLive 返回一页未删除记录及未删除总数。
	// 计数和取页是两条独立语句，两者之间并发写入会带来至多一行的偏差，按设计接受。
	ListLive(offset, limit int) ([]model.AlbumImage, int64, error)
	FindLiveByID(id uint) (*model.AlbumImage, error)
	// SoftDelete 置删除标记并盖 update_time 戳。
	SoftDelete(id uint, now time.Time) error
}
