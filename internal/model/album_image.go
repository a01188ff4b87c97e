package model

import "time"

// AlbumImage 相册图片记录。file_name 保存存储后端内的对象键（本地为文件名，
// OSS 为 album/ 前缀的对象键），file_url 在上传时计算后原样落库，之后不再重新推导。
type AlbumImage struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FileName     string    `json:"fileName" gorm:"column:file_name;not null;index"`
	OriginalName string    `json:"originalName" gorm:"column:original_name;not null"`
	FileURL      string    `json:"fileUrl" gorm:"column:file_url;not null"`
	FileSize     int64     `json:"fileSize" gorm:"column:file_size;not null"`
	FileType     string    `json:"fileType" gorm:"column:file_type;not null"`
	Description  string    `json:"description"`
	UploadTime   time.Time `json:"uploadTime" gorm:"column:upload_time;not null;index"`
	UpdateTime   time.Time `json:"-" gorm:"column:update_time"`
	IsDeleted    bool      `json:"-" gorm:"column:is_deleted;not null;default:false;index"`
	SortOrder    int       `json:"sortOrder" gorm:"column:sort_order;not null;default:0"`
}

func (AlbumImage) TableName() string {
	return "album_image"
}
