package repository

import (
	"time"

	"github.com/zygggggg/blog/internal/model"

	"gorm.io/gorm"
)

type AlbumRepository struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) AlbumStore {
	return &AlbumRepository{db: db}
}

func (r *AlbumRepository) Create(image *model.AlbumImage) error {
	return r.db.Create(image).Error
}

func (r *AlbumRepository) ListLive(offset, limit int) ([]model.AlbumImage, int64, error) {
	var total int64
	if err := r.db.Model(&model.AlbumImage{}).
		Where("is_deleted = ?", false).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var images []model.AlbumImage
	err := r.db.Where("is_deleted = ?", false).
		Order("sort_order DESC").
		Order("upload_time DESC").
		Offset(offset).
		Limit(limit).
		Find(&images).Error
	if err != nil {
		return nil, 0, err
	}

	return images, total, nil
}

func (r *AlbumRepository) FindLiveByID(id uint) (*model.AlbumImage, error) {
	var image model.AlbumImage
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *AlbumRepository) SoftDelete(id uint, now time.Time) error {
	return r.db.Model(&model.AlbumImage{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_deleted":  true,
			"update_time": now,
		}).Error
}
