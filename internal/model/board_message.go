package model

import "time"

// BoardMessage 留言板留言，纯文本，无存储后端参与。
type BoardMessage struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Nickname   string    `json:"nickname" gorm:"not null"`
	Content    string    `json:"content" gorm:"not null"`
	CreateTime time.Time `json:"createTime" gorm:"column:create_time;not null;index"`
	IsDeleted  bool      `json:"-" gorm:"column:is_deleted;not null;default:false;index"`
}

func (BoardMessage) TableName() string {
	return "board_messages"
}
