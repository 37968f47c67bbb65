package models

type ShiftModel struct {
	ID            uint   `gorm:"primaryKey"`
	UUID          string `gorm:"uniqueIndex;size:36;not null"`
	CondominiumID uint   `gorm:"not null;index"`
	GuardID       uint   `gorm:"not null;index"`
	StartTime     int64  `gorm:"not null;index"`
	EndTime       int64  `gorm:"not null"`
	Location      string `gorm:"size:200"`
	Notes         string `gorm:"type:text"`
	Status        string `gorm:"size:20;not null;index"`
	CancelledAt   *int64
	CreatedAt     int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (ShiftModel) TableName() string {
	return "guard_shifts"
}
