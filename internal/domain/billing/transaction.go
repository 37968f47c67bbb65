package billing

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType tags ledger entries.
type TransactionType string

const (
	TransactionCharge        TransactionType = "charge"
	TransactionPayment       TransactionType = "payment"
	TransactionSeatChange    TransactionType = "seat_change"
	TransactionSchedulerNote TransactionType = "scheduler_run"
)

// Transaction is one append-only ledger entry. Charges carry positive
// amounts, payments negative; the tenant balance is the running sum.
type Transaction struct {
	ID            uint
	UUID          string
	CondominiumID uint
	Type          TransactionType
	AmountCents   int64
	Currency      string
	Partial       bool
	RecordedBy    *uint
	Notes         string
	CreatedAt     time.Time
}

// NewTransaction builds a ledger entry; entries are immutable once written.
func NewTransaction(condominiumID uint, txType TransactionType, amountCents int64, currency string, partial bool, recordedBy *uint, notes string) *Transaction {
	return &Transaction{
		UUID:          uuid.NewString(),
		CondominiumID: condominiumID,
		Type:          txType,
		AmountCents:   amountCents,
		Currency:      currency,
		Partial:       partial,
		RecordedBy:    recordedBy,
		Notes:         notes,
		CreatedAt:     time.Now(),
	}
}

// SchedulerRun records one billing scheduler execution for one tenant and
// period. The (condominium, period) pair is unique so an overlapping run-now
// trigger can never double-charge.
type SchedulerRun struct {
	ID            uint
	CondominiumID uint
	Period        string // YYYY-MM, the charged billing period
	AmountCents   int64
	Trigger       string // "scheduled" or "manual"
	RanAt         time.Time
}
