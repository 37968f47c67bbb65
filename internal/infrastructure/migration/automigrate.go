package migration

import (
	"genturix/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CondominiumModel{},
		&models.AuthorizationModel{},
		&models.VisitorEntryModel{},
		&models.ShiftModel{},
		&models.AttendanceModel{},
		&models.AbsenceRequestModel{},
		&models.PanicEventModel{},
		&models.GlobalPricingModel{},
		&models.SeatUpgradeRequestModel{},
		&models.BillingTransactionModel{},
		&models.SchedulerRunModel{},
		&models.NotificationModel{},
		&models.AuditLogModel{},
	}
}
