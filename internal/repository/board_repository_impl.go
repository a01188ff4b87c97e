package repository

import (
	"github.com/zygggggg/blog/internal/model"

	"gorm.io/gorm"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) BoardStore {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(message *model.BoardMessage) error {
	return r.db.Create(message).Error
}

func (r *BoardRepository) ListLive(offset, limit int) ([]model.BoardMessage, int64, error) {
	var total int64
	if err := r.db.Model(&model.BoardMessage{}).
		Where("is_deleted = ?", false).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []model.BoardMessage
	err := r.db.Where("is_deleted = ?", false).
		Order("create_time DESC").
		Offset(offset).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

func (r *BoardRepository) FindLiveByID(id uint) (*model.BoardMessage, error) {
	var message model.BoardMessage
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *BoardRepository) SoftDelete(id uint) error {
	return r.db.Model(&model.BoardMessage{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (r *BoardRepository) ClearLive() (int64, error) {
	result := r.db.Model(&model.BoardMessage{}).
		Where("is_deleted = ?", false).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}
