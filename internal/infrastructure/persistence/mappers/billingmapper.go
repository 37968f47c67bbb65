package mappers

import (
	"fmt"

	"genturix/internal/domain/billing"
	"genturix/internal/infrastructure/persistence/models"
)

type SeatUpgradeMapper interface {
	ToModel(r *billing.SeatUpgradeRequest) (*models.SeatUpgradeRequestModel, error)
	ToDomain(m *models.SeatUpgradeRequestModel) (*billing.SeatUpgradeRequest, error)
}

type SeatUpgradeMapperImpl struct{}

func NewSeatUpgradeMapper() SeatUpgradeMapper {
	return &SeatUpgradeMapperImpl{}
}

func (mp *SeatUpgradeMapperImpl) ToModel(r *billing.SeatUpgradeRequest) (*models.SeatUpgradeRequestModel, error) {
	if r == nil {
		return nil, fmt.Errorf("seat upgrade request cannot be nil")
	}

	return &models.SeatUpgradeRequestModel{
		ID:             r.ID(),
		UUID:           r.UUID(),
		CondominiumID:  r.CondominiumID(),
		RequestedBy:    r.RequestedBy(),
		RequestedSeats: r.RequestedSeats(),
		Status:         string(r.Status()),
		DecidedBy:      r.DecidedBy(),
		DecisionNotes:  r.DecisionNotes(),
		CreatedAt:      timeToMillis(r.CreatedAt()),
		UpdatedAt:      timeToMillis(r.UpdatedAt()),
	}, nil
}

func (mp *SeatUpgradeMapperImpl) ToDomain(m *models.SeatUpgradeRequestModel) (*billing.SeatUpgradeRequest, error) {
	if m == nil {
		return nil, fmt.Errorf("seat upgrade request model cannot be nil")
	}

	return billing.ReconstructSeatUpgradeRequest(
		m.ID,
		m.UUID,
		m.CondominiumID,
		m.RequestedBy,
		m.RequestedSeats,
		billing.UpgradeStatus(m.Status),
		m.DecidedBy,
		m.DecisionNotes,
		millisToTime(m.CreatedAt),
		millisToTime(m.UpdatedAt),
	)
}

// TransactionMapper converts ledger entries. Transactions are plain structs
// so the mapping is field for field.
type TransactionMapper interface {
	ToModel(t *billing.Transaction) *models.BillingTransactionModel
	ToDomain(m *models.BillingTransactionModel) *billing.Transaction
}

type TransactionMapperImpl struct{}

func NewTransactionMapper() TransactionMapper {
	return &TransactionMapperImpl{}
}

func (mp *TransactionMapperImpl) ToModel(t *billing.Transaction) *models.BillingTransactionModel {
	return &models.BillingTransactionModel{
		ID:            t.ID,
		UUID:          t.UUID,
		CondominiumID: t.CondominiumID,
		Type:          string(t.Type),
		AmountCents:   t.AmountCents,
		Currency:      t.Currency,
		Partial:       t.Partial,
		RecordedBy:    t.RecordedBy,
		Notes:         t.Notes,
		CreatedAt:     timeToMillis(t.CreatedAt),
	}
}

func (mp *TransactionMapperImpl) ToDomain(m *models.BillingTransactionModel) *billing.Transaction {
	return &billing.Transaction{
		ID:            m.ID,
		UUID:          m.UUID,
		CondominiumID: m.CondominiumID,
		Type:          billing.TransactionType(m.Type),
		AmountCents:   m.AmountCents,
		Currency:      m.Currency,
		Partial:       m.Partial,
		RecordedBy:    m.RecordedBy,
		Notes:         m.Notes,
		CreatedAt:     millisToTime(m.CreatedAt),
	}
}

type SchedulerRunMapper interface {
	ToModel(r *billing.SchedulerRun) *models.SchedulerRunModel
	ToDomain(m *models.SchedulerRunModel) *billing.SchedulerRun
}

type SchedulerRunMapperImpl struct{}

func NewSchedulerRunMapper() SchedulerRunMapper {
	return &SchedulerRunMapperImpl{}
}

func (mp *SchedulerRunMapperImpl) ToModel(r *billing.SchedulerRun) *models.SchedulerRunModel {
	return &models.SchedulerRunModel{
		ID:            r.ID,
		CondominiumID: r.CondominiumID,
		Period:        r.Period,
		AmountCents:   r.AmountCents,
		Trigger:       r.Trigger,
		RanAt:         timeToMillis(r.RanAt),
	}
}

func (mp *SchedulerRunMapperImpl) ToDomain(m *models.SchedulerRunModel) *billing.SchedulerRun {
	return &billing.SchedulerRun{
		ID:            m.ID,
		CondominiumID: m.CondominiumID,
		Period:        m.Period,
		AmountCents:   m.AmountCents,
		Trigger:       m.Trigger,
		RanAt:         millisToTime(m.RanAt),
	}
}
