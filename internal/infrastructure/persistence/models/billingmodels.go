package models

// GlobalPricingModel is a single-row table holding the platform default
// seat price.
type GlobalPricingModel struct {
	ID             uint   `gorm:"primaryKey"`
	SeatPriceCents int64  `gorm:"not null"`
	Currency       string `gorm:"size:3;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (GlobalPricingModel) TableName() string {
	return "global_pricing"
}

type SeatUpgradeRequestModel struct {
	ID             uint   `gorm:"primaryKey"`
	UUID           string `gorm:"uniqueIndex;size:36;not null"`
	CondominiumID  uint   `gorm:"not null;index"`
	RequestedBy    uint   `gorm:"not null;index"`
	RequestedSeats int    `gorm:"not null"`
	Status         string `gorm:"size:20;not null;index"`
	DecidedBy      *uint
	DecisionNotes  string `gorm:"type:text"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SeatUpgradeRequestModel) TableName() string {
	return "seat_upgrade_requests"
}

// BillingTransactionModel rows are append-only.
type BillingTransactionModel struct {
	ID            uint   `gorm:"primaryKey"`
	UUID          string `gorm:"uniqueIndex;size:36;not null"`
	CondominiumID uint   `gorm:"not null;index:idx_billing_tx_condo_created"`
	Type          string `gorm:"size:30;not null;index"`
	AmountCents   int64  `gorm:"not null"`
	Currency      string `gorm:"size:3;not null"`
	Partial       bool   `gorm:"not null;default:false"`
	RecordedBy    *uint
	Notes         string `gorm:"type:text"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null;index:idx_billing_tx_condo_created"`
}

func (BillingTransactionModel) TableName() string {
	return "billing_transactions"
}

// SchedulerRunModel dedups billing runs: the unique (condominium, period)
// pair makes overlapping run-now triggers idempotent.
type SchedulerRunModel struct {
	ID            uint   `gorm:"primaryKey"`
	CondominiumID uint   `gorm:"not null;uniqueIndex:idx_scheduler_run_condo_period"`
	Period        string `gorm:"size:7;not null;uniqueIndex:idx_scheduler_run_condo_period"`
	AmountCents   int64  `gorm:"not null"`
	Trigger       string `gorm:"size:20;not null"`
	RanAt         int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (SchedulerRunModel) TableName() string {
	return "billing_scheduler_runs"
}
