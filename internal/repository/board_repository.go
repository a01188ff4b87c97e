package repository

import "github.com/zygggggg/blog/internal/model"

// BoardStore 留言板留言的持久化操作，软删除语义与相册一致。
type BoardStore interface {
	Create(message *model.BoardMessage) error
	ListLive(offset, limit int) ([]model.BoardMessage, int64, error)
	FindLiveByID(id uint) (*model.BoardMessage, error)
	SoftDelete(id uint) error
	// ClearLive 软删除全部未删除留言，返回受影响行数。
	ClearLive() (int64, error)
}
