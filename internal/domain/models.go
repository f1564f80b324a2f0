package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Card struct {
	ID         int        `db:"id"`
	UserID     int        `db:"user_id"`
	CardNumber string     `db:"card_number"`
	Provider   string     `db:"card_provider"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

// Balance is the ledger row for a card. TotalBalance is kept in the
// smallest currency unit and never goes below zero. Version is bumped on
// every committed mutation; a writer holding a stale version loses the
// race and must re-read before retrying.
type Balance struct {
	ID             int        `db:"id"`
	CardNumber     string     `db:"card_number"`
	TotalBalance   int64      `db:"total_balance"`
	Version        int64      `db:"version"`
	WithdrawAmount *int64     `db:"withdraw_amount"`
	WithdrawTime   *time.Time `db:"withdraw_time"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type Merchant struct {
	ID        int        `db:"id"`
	Name      string     `db:"name"`
	APIKey    string     `db:"api_key"`
	UserID    int        `db:"user_id"`
	Status    string     `db:"status"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

const (
	MerchantStatusActive   string = "active"
	MerchantStatusInactive string = "inactive"
)

const (
	OperationKindTopup    string = "topup"
	OperationKindWithdraw string = "withdraw"
	OperationKindTransfer string = "transfer"
	OperationKindPurchase string = "purchase"
	// single-leg kinds produced by the ledger engine
	OperationKindCredit string = "credit"
	OperationKindDebit  string = "debit"
)

const (
	OperationStatusPending string = "pending"
	OperationStatusSuccess string = "success"
	OperationStatusFailed  string = "failed"
)

// Operation is both the audit record of a mutating operation and its
// idempotency registry entry: OperationNo is unique system-wide and the
// row transitions from pending to exactly one terminal status.
type Operation struct {
	ID             int        `db:"id"`
	OperationNo    string     `db:"operation_no"`
	Kind           string     `db:"kind"`
	CardNumber     string     `db:"card_number"`
	DestCardNumber *string    `db:"dest_card_number"`
	MerchantID     *int       `db:"merchant_id"`
	Method         *string    `db:"method"`
	Amount         int64      `db:"amount"`
	Status         string     `db:"status"`
	ResultBalance  *int64     `db:"result_balance"`
	FailReason     *string    `db:"fail_reason"`
	EffectTime     time.Time  `db:"effect_time"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

// Terminal reports whether the operation reached a final status.
func (o *Operation) Terminal() bool {
	return o.Status == OperationStatusSuccess || o.Status == OperationStatusFailed
}
