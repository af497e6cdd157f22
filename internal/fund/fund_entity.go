package fund

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "Thu"
	TypeExpense = "Chi"
)

func ValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}

// NewTransactionID mints the public ledger id. Seq, not this id, carries the
// insertion order the balance chain depends on.
func NewTransactionID(at time.Time) string {
	return fmt.Sprintf("T-%d", at.UnixMilli())
}

// Transaction is one row of the append-only fund ledger. BalanceAfter is
// derived at append time from the previous row and never rewritten, so the
// chain reflects insertion order even when Date is backdated.
type Transaction struct {
	Seq          int64           `gorm:"column:seq;primaryKey;autoIncrement"`
	ID           string          `gorm:"column:id;type:varchar(30);not null;uniqueIndex:uq_fund_transactions_id"`
	Date         string          `gorm:"column:date;type:varchar(10);not null;index"`
	Type         string          `gorm:"column:type;type:varchar(5);not null"`
	Amount       decimal.Decimal `gorm:"column:amount;type:numeric(18,0);not null"`
	Content      string          `gorm:"column:content;type:text"`
	Performer    string          `gorm:"column:performer;type:varchar(255)"`
	BalanceAfter decimal.Decimal `gorm:"column:balance_after;type:numeric(18,0);not null"`
	CreatedAt    time.Time
}

func (Transaction) TableName() string {
	return "fund_transactions"
}

// SignedAmount applies the transaction's direction to its magnitude.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
