package models

import "gorm.io/datatypes"

type UserModel struct {
	ID            uint   `gorm:"primaryKey"`
	UUID          string `gorm:"uniqueIndex;size:36;not null"`
	Email         string `gorm:"uniqueIndex;size:255;not null"`
	FullName      string `gorm:"size:200;not null"`
	PasswordHash  string `gorm:"size:100;not null"`
	Roles         string `gorm:"size:200;not null"` // comma separated role tags
	CondominiumID *uint  `gorm:"index"`
	IsActive      bool   `gorm:"not null;default:true;index"`
	RoleData      datatypes.JSON
	CreatedAt     int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}
