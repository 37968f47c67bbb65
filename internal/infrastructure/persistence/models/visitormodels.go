package models

type AuthorizationModel struct {
	ID                   uint   `gorm:"primaryKey"`
	UUID                 string `gorm:"uniqueIndex;size:36;not null"`
	CondominiumID        uint   `gorm:"not null;index"`
	CreatedBy            uint   `gorm:"not null;index"`
	VisitorName          string `gorm:"size:200;not null"`
	IdentificationNumber string `gorm:"size:50"`
	VehiclePlate         string `gorm:"size:20"`
	AuthType             string `gorm:"column:authorization_type;size:20;not null"`
	ValidFrom            int64  `gorm:"not null"`
	ValidTo              int64
	IsActive             bool   `gorm:"not null;default:true;index"`
	Notes                string `gorm:"type:text"`
	CreatedAt            int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt            int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AuthorizationModel) TableName() string {
	return "visitor_authorizations"
}

type VisitorEntryModel struct {
	ID                   uint   `gorm:"primaryKey"`
	UUID                 string `gorm:"uniqueIndex;size:36;not null"`
	CondominiumID        uint   `gorm:"not null;index"`
	AuthorizationID      *uint  `gorm:"index"`
	GuardID              uint   `gorm:"not null;index"`
	VisitorName          string `gorm:"size:200;not null"`
	IdentificationNumber string `gorm:"size:50"`
	VehiclePlate         string `gorm:"size:20"`
	Destination          string `gorm:"size:200"`
	Status               string `gorm:"size:20;not null;index"`
	IsAuthorized         bool   `gorm:"not null"`
	EntryType            string `gorm:"column:authorization_type;size:20;not null"`
	EntryAt              int64  `gorm:"not null;index"`
	ExitAt               *int64
	Notes                string `gorm:"type:text"`
}

func (VisitorEntryModel) TableName() string {
	return "visitor_entries"
}
