package models

import "gorm.io/datatypes"

type NotificationModel struct {
	ID            uint   `gorm:"primaryKey"`
	UUID          string `gorm:"uniqueIndex;size:36;not null"`
	CondominiumID uint   `gorm:"not null;index"`
	RecipientID   uint   `gorm:"not null;index:idx_notifications_recipient_read"`
	Type          string `gorm:"size:50;not null"`
	Title         string `gorm:"size:200"`
	Body          string `gorm:"type:text"`
	Data          datatypes.JSON
	Read          bool  `gorm:"not null;default:false;index:idx_notifications_recipient_read"`
	CreatedAt     int64 `gorm:"autoCreateTime:milli;not null;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
