package models

import "gorm.io/datatypes"

type CondominiumModel struct {
	ID                uint   `gorm:"primaryKey"`
	UUID              string `gorm:"uniqueIndex;size:36;not null"`
	Name              string `gorm:"size:200;not null"`
	BillingStatus     string `gorm:"size:20;not null;index"`
	SeatCount         int    `gorm:"not null"`
	Currency          string `gorm:"size:3;not null"`
	Modules           datatypes.JSON
	SeatPriceOverride *int64 // cents; NULL means global default applies
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CondominiumModel) TableName() string {
	return "condominiums"
}
