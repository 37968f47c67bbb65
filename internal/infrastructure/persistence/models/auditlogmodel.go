package models

// AuditLogModel rows are append-only and never mutated.
type AuditLogModel struct {
	ID            uint   `gorm:"primaryKey"`
	UUID          string `gorm:"uniqueIndex;size:36;not null"`
	EventType     string `gorm:"size:50;not null;index:idx_audit_type_created"`
	UserUUID      string `gorm:"size:36;index"`
	CondominiumID *uint  `gorm:"index"`
	Resource      string `gorm:"size:200"`
	Details       string `gorm:"type:text"`
	IPAddress     string `gorm:"size:45"`
	UserAgent     string `gorm:"size:255"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null;index:idx_audit_type_created"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
