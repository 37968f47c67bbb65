package models

type PanicEventModel struct {
	ID              uint   `gorm:"primaryKey"`
	UUID            string `gorm:"uniqueIndex;size:36;not null"`
	CondominiumID   uint   `gorm:"not null;index"`
	UserID          uint   `gorm:"not null;index"`
	PanicType       string `gorm:"size:50;not null"`
	Location        string `gorm:"size:200"`
	Latitude        *float64
	Longitude       *float64
	Description     string `gorm:"type:text"`
	Status          string `gorm:"size:20;not null;index"`
	ResolutionNotes string `gorm:"type:text"`
	ResolvedBy      *uint
	ResolvedAt      *int64
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null;index"`
}

func (PanicEventModel) TableName() string {
	return "panic_events"
}
