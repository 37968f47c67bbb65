package models

type AttendanceModel struct {
	ID            uint   `gorm:"primaryKey"`
	UUID          string `gorm:"uniqueIndex;size:36;not null"`
	CondominiumID uint   `gorm:"not null;index"`
	UserID        uint   `gorm:"not null;index"`
	ClockInAt     int64  `gorm:"not null;index"`
	ClockOutAt    *int64
	Notes         string `gorm:"type:text"`
}

func (AttendanceModel) TableName() string {
	return "hr_attendance"
}

type AbsenceRequestModel struct {
	ID            uint   `gorm:"primaryKey"`
	UUID          string `gorm:"uniqueIndex;size:36;not null"`
	CondominiumID uint   `gorm:"not null;index"`
	UserID        uint   `gorm:"not null;index"`
	FromDate      int64  `gorm:"not null"`
	ToDate        int64  `gorm:"not null"`
	Reason        string `gorm:"type:text"`
	Status        string `gorm:"size:20;not null;index"`
	DecidedBy     *uint
	DecisionNotes string `gorm:"type:text"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AbsenceRequestModel) TableName() string {
	return "hr_absence_requests"
}
